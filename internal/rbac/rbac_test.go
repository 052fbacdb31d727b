package rbac

import "testing"

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       string
		permission string
		expected   bool
	}{
		{RoleBrand, PermManageCampaigns, true},
		{RoleBrand, PermSendInvite, true},
		{RoleBrand, PermReviewApplication, true},
		{RoleBrand, PermApplyToCampaign, false},
		{RoleBrand, PermSubmitContent, false},

		{RoleInfluencer, PermApplyToCampaign, true},
		{RoleInfluencer, PermRespondToInvite, true},
		{RoleInfluencer, PermViewProjects, true},
		{RoleInfluencer, PermManageCampaigns, false},
		{RoleInfluencer, PermReviewSubmission, false},

		{"unknown", PermManageCampaigns, false},
		{"", PermViewProjects, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.permission, func(t *testing.T) {
			if got := HasPermission(tt.role, tt.permission); got != tt.expected {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.role, tt.permission, got, tt.expected)
			}
		})
	}
}
