package output

import (
	"encoding/json"

	"github.com/rgehrsitz/iitax/internal/domain"
)

// JSONFormatter emits the whole summary as indented JSON.
var JSONFormatter = FormatterFunc{
	ID: "json",
	F: func(s *domain.YearlySummary) ([]byte, error) {
		return json.MarshalIndent(s, "", "  ")
	},
}
