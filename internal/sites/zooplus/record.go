package zooplus

import (
	"reflect"
	"strconv"
	"strings"
)

// Record is one veterinarian listing. Field order is the CSV column order.
type Record struct {
	Name          string  `csv:"name" json:"name"`
	Clinic        *string `csv:"clinic" json:"clinic"`
	ReceptionTime string  `csv:"reception_time" json:"reception_time"`
	Address       string  `csv:"address" json:"address"`
	Rating        int     `csv:"rating" json:"rating"`
	NumReviews    float64 `csv:"num_reviews" json:"num_reviews"`
}

var header = func() []string {
	t := reflect.TypeOf(Record{})
	names := make([]string, t.NumField())
	for i := range names {
		names[i] = t.Field(i).Tag.Get("csv")
	}
	return names
}()

// Header returns the column names in declaration order.
func Header() []string {
	return append([]string(nil), header...)
}

// Values returns the field values in declaration order. A nil Clinic is
// rendered as an empty string.
func (r Record) Values() []string {
	clinic := ""
	if r.Clinic != nil {
		clinic = *r.Clinic
	}
	return []string{
		r.Name,
		clinic,
		r.ReceptionTime,
		r.Address,
		strconv.Itoa(r.Rating),
		formatFloat(r.NumReviews),
	}
}

// formatFloat always keeps a decimal part, so 128 is written as "128.0".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
