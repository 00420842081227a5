package speech

import "testing"

func TestNormalizeInclusiveForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"at-sign plural", "l@s estudiantes", "los estudiantes"},
		{"slash pair", "los/las docentes", "los docentes"},
		{"article pair", "el/la responsable", "el responsable"},
		{"at-sign nouns", "tod@s y niñ@s y alumn@s", "todos y niños y alumnos"},
		{"x ending", "amigx llegó", "amigos llegó"},
		{"x with suffix", "amigxes y amigxas", "amigos y amigos"},
		{"e forms", "todes, niñes, alumnes y compañeres", "todos, niños, alumnos y compañeros"},
		{"pronoun pair", "ella o él decide", "él decide"},
		{"plural pronoun pair", "ellos y ellas juegan", "ellos juegan"},
		{"first person pair", "nosotros y nosotras vamos", "nosotros vamos"},
		{"plain text untouched", "los estudiantes leen", "los estudiantes leen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	if got := Normalize("Tod@s presentes"); got != "todos presentes" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	if got := Normalize("  hola \n\t mundo  "); got != "hola mundo" {
		t.Errorf("got %q", got)
	}
}
