package social

import (
	"github.com/slack-go/slack"
)

// buildSocialFormBlocks renders the social post intake form: title and
// description inputs, platform checkboxes, and the submit button.
func buildSocialFormBlocks() []slack.Block {
	titleInput := slack.NewPlainTextInputBlockElement(nil, "title_input")
	descInput := slack.NewPlainTextInputBlockElement(nil, "description_input")

	platforms := slack.NewCheckboxGroupsBlockElement("platforms_input",
		slack.NewOptionBlockObject("tiktok",
			slack.NewTextBlockObject(slack.PlainTextType, "TikTok", false, false), nil),
		slack.NewOptionBlockObject("instagram",
			slack.NewTextBlockObject(slack.PlainTextType, "Instagram", false, false), nil),
	)

	return []slack.Block{
		slack.NewInputBlock("social_title",
			slack.NewTextBlockObject(slack.PlainTextType, "Title", false, false),
			nil, titleInput),
		slack.NewInputBlock("social_description",
			slack.NewTextBlockObject(slack.PlainTextType, "Description", false, false),
			nil, descInput),
		slack.NewInputBlock("social_platforms",
			slack.NewTextBlockObject(slack.PlainTextType, "Platforms", false, false),
			nil, platforms),
		slack.NewActionBlock("social_submit",
			slack.NewButtonBlockElement("submit_social_post", "submit_social_post",
				slack.NewTextBlockObject(slack.PlainTextType, "Submit Post", false, false)).
				WithStyle(slack.StylePrimary),
		),
	}
}
