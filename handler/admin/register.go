package admin

import (
	"github.com/dylan-dingjan/bebetterbot/handler"
)

// RegisterHandlers registers all handlers for the admin package.
func RegisterHandlers() {
	handler.AddCommandHandler("/admin", AdminCommandHandler)
	handler.AddActionHandler("admin", MenuActionHandler)
}
