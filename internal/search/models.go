package search

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Temperature is a temperature in degrees Celsius kept in textual form.
// It decodes from either a JSON number or a JSON string and always encodes
// as a string.
type Temperature string

// FormatTemperature renders a Celsius value using the shortest decimal
// representation (15.2, -3, 0.5).
func FormatTemperature(celsius float64) Temperature {
	return Temperature(strconv.FormatFloat(celsius, 'f', -1, 64))
}

func (t *Temperature) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Temperature(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("temp must be a number or a string: %w", err)
	}
	*t = Temperature(n.String())
	return nil
}

// Label returns the temperature as displayed to the user, e.g. "15.2 °C".
func (t Temperature) Label() string {
	return string(t) + " °C"
}

// Record is one completed weather lookup. Records are never mutated once stored.
type Record struct {
	ID            string      `json:"_id,omitempty" bson:"_id,omitempty"`
	City          string      `json:"city" bson:"city"`
	Country       string      `json:"country" bson:"country"`
	Temp          Temperature `json:"temp" bson:"temp"`
	Condition     string      `json:"condition" bson:"condition"`
	ConditionText string      `json:"conditionText" bson:"conditionText"`
	Icon          string      `json:"icon" bson:"icon"`
	Date          time.Time   `json:"date" bson:"date"`
}

// Draft holds the client-supplied fields of a record. ID and Date are
// always assigned on write.
type Draft struct {
	City          string      `json:"city" validate:"required"`
	Country       string      `json:"country" validate:"required"`
	Temp          Temperature `json:"temp"`
	Condition     string      `json:"condition"`
	ConditionText string      `json:"conditionText"`
	Icon          string      `json:"icon"`
}

// Draft strips the server-assigned fields from r.
func (r Record) Draft() Draft {
	return Draft{
		City:          r.City,
		Country:       r.Country,
		Temp:          r.Temp,
		Condition:     r.Condition,
		ConditionText: r.ConditionText,
		Icon:          r.Icon,
	}
}
