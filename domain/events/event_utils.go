package events

import "reflect"

// ExtractSessionID reads the SessionID field of an event, or "" if it has none
func ExtractSessionID(event Event) string {
	return stringField(event, "SessionID")
}

// ExtractEventID reads the EventID field of an event, or "" if it has none
func ExtractEventID(event Event) string {
	return stringField(event, "EventID")
}

func stringField(event Event, name string) string {
	val := reflect.ValueOf(event)

	// If it's a pointer, get the underlying element
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() == reflect.Struct {
		field := val.FieldByName(name)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return ""
}
