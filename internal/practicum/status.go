package practicum

import "fmt"

// Verdicts is the fixed status-to-sentence table. The status set is closed:
// any other value is an UnknownStatusError.
var Verdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}

// ParseStatus turns one homework record into the notification sentence.
// Both homework_name and status must be present as strings.
func ParseStatus(hw map[string]any) (string, error) {
	var missing []string
	name, ok := hw["homework_name"].(string)
	if !ok {
		missing = append(missing, "homework_name")
	}
	status, ok := hw["status"].(string)
	if !ok {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return "", &MissingFieldsError{Fields: missing}
	}

	verdict, ok := Verdicts[status]
	if !ok {
		return "", &UnknownStatusError{Status: status}
	}
	return fmt.Sprintf("Изменился статус проверки работы %q. %s", name, verdict), nil
}
