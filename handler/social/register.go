package social

import (
	"github.com/dylan-dingjan/bebetterbot/handler"
)

// RegisterHandlers registers all handlers for the social package.
func RegisterHandlers() {
	handler.AddCommandHandler("/social-post", SocialPostCommandHandler)
	handler.AddActionHandler("submit_social_post", SubmitSocialPostHandler)

	// Review decision buttons carry `decision:{approve|decline}:{caseId}`.
	handler.AddActionHandler("decision", DecisionActionHandler)
}
