package service

import (
	"regexp"
	"strings"
)

/*
========================
 Saneo de respuestas LLM
========================

Los modelos devuelven el JSON del clasificador envuelto en fences
markdown o con texto alrededor. Estas funciones recuperan el primer
objeto JSON balanceado del texto crudo.
*/

var (
	fenceStart = regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	fenceEnd   = regexp.MustCompile("(?is)\\s*```\\s*$")
)

// cleanLLMJSONResponse quita fences ```json ... ``` y BOM.
func cleanLLMJSONResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "\ufeff")
	s = fenceStart.ReplaceAllString(s, "")
	s = fenceEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// extractFirstJSONObject devuelve el primer objeto {...} balanceado,
// respetando strings con llaves escapadas. Cadena vacía si no hay objeto.
func extractFirstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}

	inString := false
	escape := false
	depth := 0

	for i := start; i < len(input); i++ {
		ch := input[i]

		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
			if depth < 0 {
				return ""
			}
		}
	}

	return ""
}
