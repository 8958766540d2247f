package masking

import "strings"

const maskToken = "****"

// MaskEmail keeps the first character of the local part and the domain.
// Values without an @ are masked with MaskSecret.
func MaskEmail(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	at := strings.LastIndex(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return MaskSecret(trimmed)
	}
	return trimmed[:1] + maskToken + trimmed[at:]
}

// MaskSecret redacts a value while keeping a short suffix.
func MaskSecret(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) <= 4 {
		return maskToken
	}
	return maskToken + trimmed[len(trimmed)-4:]
}

// MaskFields returns a copy of input where the string values of the given
// keys are masked. Keys named like an email are masked with MaskEmail.
func MaskFields(input map[string]any, keys ...string) map[string]any {
	if len(input) == 0 {
		return nil
	}

	sensitive := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		sensitive[strings.ToLower(strings.TrimSpace(key))] = struct{}{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			continue
		}
		lower := strings.ToLower(trimmedKey)
		str, isString := value.(string)
		if _, ok := sensitive[lower]; !ok || !isString {
			out[trimmedKey] = value
			continue
		}
		if strings.Contains(lower, "email") {
			out[trimmedKey] = MaskEmail(str)
		} else {
			out[trimmedKey] = MaskSecret(str)
		}
	}
	return out
}
