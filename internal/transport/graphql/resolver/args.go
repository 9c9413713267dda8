package resolver

import "encoding/json"

// intArg reads the named argument as an int. Query literals and schema
// defaults arrive as int64, JSON variables as float64 or json.Number.
func intArg(args map[string]any, name string, fallback int) int {
	switch v := args[name].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return fallback
		}
		return int(n)
	default:
		return fallback
	}
}

func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}
