package model

import "testing"

func TestStepStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   StepStatus
		value string
	}{
		{"pending", StepStatusPending, "pending"},
		{"in progress", StepStatusInProgress, "in_progress"},
		{"completed", StepStatusCompleted, "completed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestDocumentStatusValues(t *testing.T) {
	cases := []struct {
		status DocumentStatus
		value  string
	}{
		{DocumentStatusUploaded, "uploaded"},
		{DocumentStatusValidated, "validated"},
		{DocumentStatusRejected, "rejected"},
	}

	for _, tc := range cases {
		if string(tc.status) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.status)
		}
	}
}

func TestDeriveOperationStatus(t *testing.T) {
	cases := []struct {
		name  string
		steps []Step
		want  OperationStatus
	}{
		{"no steps", nil, OperationStatusDraft},
		{"all pending", []Step{{Status: StepStatusPending}, {Status: StepStatusPending}}, OperationStatusDraft},
		{"one active", []Step{{Status: StepStatusInProgress}, {Status: StepStatusPending}}, OperationStatusActive},
		{"partially completed", []Step{{Status: StepStatusCompleted}, {Status: StepStatusPending}}, OperationStatusActive},
		{"all completed", []Step{{Status: StepStatusCompleted}, {Status: StepStatusCompleted}}, OperationStatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveOperationStatus(tc.steps); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
