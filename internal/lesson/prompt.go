package lesson

import (
	"fmt"
	"strings"
)

// ExplanationLength controls how long generated option explanations are.
type ExplanationLength string

const (
	ExplanationShort  ExplanationLength = "corta"
	ExplanationMedium ExplanationLength = "mediana"
	ExplanationLong   ExplanationLength = "larga"
)

const quizSystemPrompt = `Eres un generador de cuestionarios de evaluación. Produces exclusivamente JSON válido con preguntas de opción múltiple de alta dificultad, basadas estrictamente en el contexto proporcionado.`

// BuildQuizPrompt builds the user prompt for generating a quiz from a
// context text. The same text works pasted into a chat UI (prompt-only
// mode) or sent through a Provider with QuizSchema attached.
func BuildQuizPrompt(context string, numQuestions int, length ExplanationLength) string {
	var b strings.Builder

	b.WriteString("Genera EXCLUSIVAMENTE un objeto JSON válido y bien formado para un cuestionario de evaluación, basado en el siguiente contexto: ")
	b.WriteString(context)
	b.WriteString("\n\n**Parámetros:**\n")
	b.WriteString(fmt.Sprintf("- Número de preguntas: %d\n", numQuestions))
	b.WriteString(fmt.Sprintf("- Longitud de explicaciones: %s\n", length))

	b.WriteString(`
**Estructura JSON requerida (sin comentarios ni placeholders):**
{
    "context": ["texto del contexto utilizado"],
    "questions": [
        {
            "id": "identificador único",
            "text": "texto de la pregunta",
            "options": [
                {
                    "value": "letra opción",
                    "text": "texto opción",
                    "correct": valor_booleano,
                    "explanation": "texto explicación"
                }
            ]
        }
    ]
}

**Reglas estrictas de formato:**
- SALIDA ÚNICAMENTE JSON VÁLIDO - sin texto, ni comentarios, ni marcas, ni acentos graves
- SIN caracteres de escape adicionales innecesarios
- SIN delimitadores de código ni contenido antes o después del objeto JSON
- Las strings del JSON deben usar comillas dobles exclusivamente
- Los valores booleanos deben ser true/false sin comillas

**Instrucciones de contenido:**
- Basa todo el contenido estrictamente en el contexto proporcionado
- Genera exactamente el número especificado de preguntas
- Las preguntas deben ser de alta dificultad, requiriendo análisis profundo, comprensión avanzada y atención a detalles sutiles del contexto
- Las opciones de respuesta deben ser plausibles, confusas y retadoras, pero siempre con sentido dentro del contexto
- Variedad de tipos de preguntas (conceptuales, aplicativas, detalle, inferenciales)
- Solo una opción correcta por pregunta (correct: true)
- Explicaciones con longitud apropiada: corta(1-2 oraciones), mediana(3-4), larga(5+)
- Opciones incorrectas deben ser plausibles pero erróneas y diseñadas para confundir a quien no domine el tema
- Lenguaje claro, profesional y desafiante acorde al tema
- PRIORIZA SIEMPRE EL APARTADO TÉCNICO, científico, de ingeniería o relacionado a ciencias. Evita preguntas arbitrarias sobre datos anecdóticos o superficiales.`)

	return b.String()
}
