package param

import (
	"fmt"
	"strconv"
	"strings"
)

// Common display formatters and parsers.

// DecibelFormatter formats dB values.
func DecibelFormatter(db float64) string {
	return fmt.Sprintf("%.1f dB", db)
}

// DecibelParser parses dB strings.
func DecibelParser(str string) (float64, error) {
	str = strings.TrimSpace(str)
	str = strings.TrimSuffix(str, "dB")
	str = strings.TrimSuffix(str, "db")
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// PercentFormatter formats percentage values.
func PercentFormatter(value float64) string {
	return fmt.Sprintf("%.0f%%", value)
}

// PercentParser parses percentage strings.
func PercentParser(str string) (float64, error) {
	str = strings.TrimSuffix(strings.TrimSpace(str), "%")
	return strconv.ParseFloat(str, 64)
}

// FrequencyFormatter formats frequency values with Hz/kHz.
func FrequencyFormatter(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// FrequencyParser parses frequency strings.
func FrequencyParser(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if strings.HasSuffix(str, "kHz") || strings.HasSuffix(str, "khz") {
		numStr := strings.TrimSuffix(strings.TrimSuffix(str, "kHz"), "khz")
		val, err := strconv.ParseFloat(strings.TrimSpace(numStr), 64)
		if err != nil {
			return 0, err
		}
		return val * 1000, nil
	}
	str = strings.TrimSuffix(strings.TrimSuffix(str, "Hz"), "hz")
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}
