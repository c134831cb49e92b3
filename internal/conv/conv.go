package conv

import (
	"encoding/json"
	"strconv"
)

// AsString coerces a JSON-RPC request id into its canonical string form.
// JSON decoding yields float64 for numeric ids; transports that construct
// requests natively may use any integer type or a string.
func AsString(value interface{}) string {
	switch actual := value.(type) {
	case string:
		return actual
	case float64:
		return strconv.FormatInt(int64(actual), 10)
	case float32:
		return strconv.FormatInt(int64(actual), 10)
	case int:
		return strconv.Itoa(actual)
	case int64:
		return strconv.FormatInt(actual, 10)
	case uint64:
		return strconv.FormatUint(actual, 10)
	case json.Number:
		return actual.String()
	case nil:
		return ""
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// AsInt attempts to coerce various numeric types into a plain int.
func AsInt(value interface{}) int {
	switch actual := value.(type) {
	case int:
		return actual
	case int64:
		return int(actual)
	case uint64:
		return int(actual)
	case float64:
		return int(actual)
	case float32:
		return int(actual)
	case string:
		ret, _ := strconv.Atoi(actual)
		return ret
	}
	return 0
}
