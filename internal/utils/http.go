// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// WriteJSON marshals data and writes it with the given status code and an
// application/json content type. A nil pointer is written as null, which is
// how an absent item is reported.
//
// If marshaling fails, nothing but a 500 is written and the wrapped error is
// returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes a plain-text message with the given status code.
//
// Example usage:
//
//	WriteText(w, "User created.", http.StatusOK)
func WriteText(w http.ResponseWriter, message string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return io.WriteString(w, message)
}
