package models

import "testing"

func TestIsValidInviteTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		// Happy path
		{InviteStatusPending, InviteStatusAccepted, true},
		{InviteStatusPending, InviteStatusDeclined, true},

		// Terminal statuses
		{InviteStatusAccepted, InviteStatusDeclined, false},
		{InviteStatusAccepted, InviteStatusPending, false},
		{InviteStatusDeclined, InviteStatusAccepted, false},

		// Arbitrary status values are rejected, not stored verbatim
		{InviteStatusPending, "ghosted", false},
		{"nonexistent", InviteStatusAccepted, false},
		{InviteStatusPending, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidInviteTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidInviteTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestIsValidApplicationTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{ApplicationStatusPending, ApplicationStatusApproved, true},
		{ApplicationStatusPending, ApplicationStatusRejected, true},

		{ApplicationStatusApproved, ApplicationStatusRejected, false},
		{ApplicationStatusApproved, ApplicationStatusPending, false},
		{ApplicationStatusRejected, ApplicationStatusApproved, false},

		{ApplicationStatusPending, "withdrawn", false},
		{ApplicationStatusPending, InviteStatusAccepted, false},
		{"nonexistent", ApplicationStatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidApplicationTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidApplicationTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestIsValidSubmissionTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{SubmissionStatusPendingReview, SubmissionStatusApproved, true},
		{SubmissionStatusPendingReview, SubmissionStatusRevisionRequested, true},

		// Reviewed submissions are final in this model
		{SubmissionStatusApproved, SubmissionStatusRevisionRequested, false},
		{SubmissionStatusRevisionRequested, SubmissionStatusApproved, false},
		{SubmissionStatusApproved, SubmissionStatusPendingReview, false},

		{SubmissionStatusPendingReview, "rejected", false},
		{"nonexistent", SubmissionStatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidSubmissionTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidSubmissionTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllStatusesHaveTransitionEntry(t *testing.T) {
	tables := map[string]struct {
		table    map[string][]string
		statuses []string
	}{
		"invite": {
			ValidInviteTransitions,
			[]string{InviteStatusPending, InviteStatusAccepted, InviteStatusDeclined},
		},
		"application": {
			ValidApplicationTransitions,
			[]string{ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected},
		},
		"submission": {
			ValidSubmissionTransitions,
			[]string{SubmissionStatusPendingReview, SubmissionStatusApproved, SubmissionStatusRevisionRequested},
		},
	}

	for name, tc := range tables {
		for _, status := range tc.statuses {
			if _, ok := tc.table[status]; !ok {
				t.Errorf("%s status %q missing from transition map", name, status)
			}
		}
	}
}

func TestIsValidCampaignStatus(t *testing.T) {
	valid := []string{CampaignStatusPlanning, CampaignStatusActive, CampaignStatusCompleted}
	for _, s := range valid {
		if !IsValidCampaignStatus(s) {
			t.Errorf("IsValidCampaignStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "paused", "PLANNING", "done"} {
		if IsValidCampaignStatus(s) {
			t.Errorf("IsValidCampaignStatus(%q) = true, want false", s)
		}
	}
}
