package rbac

// Role constants
const (
	RoleBrand      = "brand"
	RoleInfluencer = "influencer"
)

// Permission constants
const (
	PermManageCampaigns   = "manage_campaigns"
	PermRunMatching       = "run_matching"
	PermSendInvite        = "send_invite"
	PermReviewApplication = "review_application"
	PermReviewSubmission  = "review_submission"
	PermSearchInfluencers = "search_influencers"
	PermManageProfile     = "manage_profile"
	PermRespondToInvite   = "respond_to_invite"
	PermApplyToCampaign   = "apply_to_campaign"
	PermSubmitContent     = "submit_content"
	PermViewProjects      = "view_projects"
)

// RolePermissions defines what each role can do.
var RolePermissions = map[string][]string{
	RoleBrand: {
		PermManageCampaigns, PermRunMatching, PermSendInvite,
		PermReviewApplication, PermReviewSubmission, PermSearchInfluencers,
	},
	RoleInfluencer: {
		PermManageProfile, PermRespondToInvite, PermApplyToCampaign,
		PermSubmitContent, PermViewProjects,
	},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
