package dashboard

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold normaliza mayúsculas/minúsculas con case folding Unicode.
// Se crea un Caser por llamada: no es seguro compartirlo entre goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}

// anyContainsFold coincide si needle aparece en alguno de los campos, sin distinguir
// mayúsculas. Una búsqueda vacía coincide con todo.
func anyContainsFold(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	n := fold(needle)
	for _, f := range fields {
		if strings.Contains(fold(f), n) {
			return true
		}
	}
	return false
}

// enumFilter parsea un filtro de enumeración. "" o "all" desactivan el filtro (nil).
func enumFilter[T ~string](raw string, parse func(string) (T, error)) (*T, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func matchEnum[T comparable](want *T, got T) bool {
	return want == nil || *want == got
}

// enumOrDefault parsea raw o devuelve def si viene vacío.
func enumOrDefault[T ~string](raw string, def T, parse func(string) (T, error)) (T, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	return parse(raw)
}
