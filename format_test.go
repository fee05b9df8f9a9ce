package main

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatResult_Success(t *testing.T) {
	r := result{
		Spec:  IconSpec{Size: 20, BackgroundName: "white", Path: "temp_icons/icon_20x20_iphone_notifications.png"},
		Bytes: 412,
	}
	want := "icon_20x20_iphone_notifications.png: 20x20 on white, 412 B"
	if got := formatResult(r); got != want {
		t.Errorf("formatResult() = %q, want %q", got, want)
	}
}

func TestFormatResult_Error(t *testing.T) {
	r := result{
		Spec: IconSpec{Size: 40, Path: "temp_icons/icon_40x40_ipad_notifications.png"},
		Err:  errors.New("boom"),
	}
	want := "icon_40x40_ipad_notifications.png: boom"
	if got := formatResult(r); got != want {
		t.Errorf("formatResult() = %q, want %q", got, want)
	}
}

func TestFormatSummary_AllWritten(t *testing.T) {
	results := []result{{Bytes: 1000}, {Bytes: 500}}
	want := "Done! 2 icons written (1.5 kB)"
	if got := formatSummary(results); got != want {
		t.Errorf("formatSummary() = %q, want %q", got, want)
	}
}

func TestFormatSummary_Single(t *testing.T) {
	got := formatSummary([]result{{Bytes: 10}})
	if got != "Done! 1 icon written (10 B)" {
		t.Errorf("formatSummary() = %q", got)
	}
}

func TestFormatSummary_WithFailures(t *testing.T) {
	results := []result{{Bytes: 300}, {Bytes: 999, Err: errors.New("x")}}
	got := formatSummary(results)
	if !strings.HasPrefix(got, "Done with errors:") {
		t.Errorf("formatSummary() = %q, want error summary", got)
	}
	if !strings.Contains(got, "1 icon written (300 B)") || !strings.HasSuffix(got, "1 failed") {
		t.Errorf("formatSummary() = %q", got)
	}
}
