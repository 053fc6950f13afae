package idea

import (
	"github.com/dylan-dingjan/bebetterbot/handler"
)

// RegisterHandlers registers all handlers for the idea package.
func RegisterHandlers() {
	handler.AddCommandHandler("/start-idea", StartIdeaCommandHandler)
	handler.AddActionHandler("submit_idea", SubmitIdeaHandler)
}
