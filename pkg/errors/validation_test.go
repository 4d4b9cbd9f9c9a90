package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "header", wantErr: false},
		{name: "with spaces", input: "side panel", wantErr: false},
		{name: "numeric", input: "-1", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "control char", input: "bad\tname", wantErr: true},
		{name: "colon", input: "a:b", wantErr: true},
		{name: "equals", input: "a=b", wantErr: true},
		{name: "too long", input: strings.Repeat("n", maxNameLength+1), wantErr: true},
		{name: "max length", input: strings.Repeat("n", maxNameLength), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateNodeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	supported := []string{"text", "dot", "svg"}

	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "text", format: "text", wantErr: false},
		{name: "svg", format: "svg", wantErr: false},
		{name: "empty", format: "", wantErr: true},
		{name: "unknown", format: "png", wantErr: true},
		{name: "case sensitive", format: "SVG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format, supported)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}
