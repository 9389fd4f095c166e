// Package blocks renders view models as Slack Block Kit payloads.
package blocks

import (
	"fmt"

	"github.com/slack-go/slack"

	"todohome/internal/models"
	"todohome/internal/view"
)

func plain(s string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, s, false, false)
}

func mrkdwn(s string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, s, false, false)
}

func button(a view.Action) *slack.ButtonBlockElement {
	b := slack.NewButtonBlockElement(string(a.ID), a.Value, plain(a.Label))
	if a.Style != view.StyleDefault {
		b = b.WithStyle(slack.Style(a.Style))
	}
	return b
}

// Home renders a home view into a home tab payload.
func Home(h view.Home) slack.HomeTabViewRequest {
	var out []slack.Block
	for _, s := range h.Sections {
		out = append(out, section(s)...)
	}
	return slack.HomeTabViewRequest{
		Type:   slack.VTHomeTab,
		Blocks: slack.Blocks{BlockSet: out},
	}
}

func section(s view.Section) []slack.Block {
	switch s.Kind {
	case view.SectionHeader:
		return []slack.Block{slack.NewHeaderBlock(plain(s.Text))}
	case view.SectionSummary, view.SectionLabel:
		return []slack.Block{slack.NewSectionBlock(mrkdwn("*"+s.Text+"*"), nil, nil)}
	case view.SectionCreate:
		return []slack.Block{slack.NewActionBlock("", button(*s.Action))}
	case view.SectionFilter:
		return []slack.Block{filterBlock(s), slack.NewDividerBlock()}
	case view.SectionEmpty:
		return []slack.Block{slack.NewSectionBlock(mrkdwn("_"+s.Text+"_"), nil, nil)}
	case view.SectionTasks:
		var out []slack.Block
		for _, item := range s.Tasks {
			out = append(out, taskBlocks(item)...)
		}
		return out
	case view.SectionCompleted:
		out := []slack.Block{slack.NewSectionBlock(mrkdwn("*✅ "+s.Text+":*"), nil, nil)}
		for _, item := range s.Completed {
			var acc *slack.Accessory
			if len(item.Actions) > 0 {
				acc = slack.NewAccessory(button(item.Actions[0]))
			}
			out = append(out, slack.NewSectionBlock(mrkdwn(strike(item)), nil, acc))
		}
		return out
	}
	return nil
}

func filterBlock(s view.Section) *slack.SectionBlock {
	var (
		opts     []*slack.OptionBlockObject
		selected *slack.OptionBlockObject
	)
	for _, opt := range s.Options {
		o := slack.NewOptionBlockObject(string(opt.Mode), plain(opt.Label), nil)
		opts = append(opts, o)
		if opt.Selected {
			selected = o
		}
	}
	radio := slack.NewRadioButtonsBlockElement(string(view.ActionChangeFilter), opts...)
	radio.InitialOption = selected
	return slack.NewSectionBlock(mrkdwn("*"+s.Text+"*"), nil, slack.NewAccessory(radio))
}

func taskBlocks(item view.TaskItem) []slack.Block {
	due := item.Due
	if item.Overdue {
		due = "*Overdue:* " + item.DueDate
	}

	var elems []slack.BlockElement
	for _, a := range item.Actions {
		if a.ID == view.ActionComplete {
			a.Label = "✅ " + a.Label
		}
		elems = append(elems, button(a))
	}

	return []slack.Block{
		slack.NewSectionBlock(mrkdwn(fmt.Sprintf("*%s*\n%s", item.Text, due)), nil, nil),
		slack.NewActionBlock("", elems...),
		slack.NewDividerBlock(),
	}
}

func strike(item view.CompletedItem) string {
	if item.Struck {
		return "~" + item.Text + "~"
	}
	return item.Text
}

// Form renders a task form into a modal payload.
func Form(f view.Form) slack.ModalViewRequest {
	var textHint, userHint *slack.TextBlockObject
	if f.ID == view.FormCreate {
		textHint = plain("Write something...")
		userHint = plain("Select user")
	}

	text := slack.NewPlainTextInputBlockElement(textHint, "text_input")
	text.Multiline = true
	text.InitialValue = f.Text

	assignee := slack.NewOptionsSelectBlockElement(slack.OptTypeUser, userHint, "assignee")
	assignee.InitialUser = f.Assignee

	due := slack.NewDatePickerBlockElement("due_date")
	due.InitialDate = validDate(f.DueDate)

	assignInput := slack.NewInputBlock("todo_assign", plain("Assigned to"), nil, assignee)
	assignInput.Optional = true
	dueInput := slack.NewInputBlock("todo_due", plain("Due date"), nil, due)
	dueInput.Optional = true

	out := []slack.Block{slack.NewHeaderBlock(plain(f.Heading))}
	if f.Error != "" {
		out = append(out, slack.NewSectionBlock(mrkdwn(":warning: "+f.Error), nil, nil))
	}
	out = append(out,
		slack.NewInputBlock("todo_text", plain("ToDo text"), nil, text),
		assignInput,
		dueInput,
	)

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      string(f.ID),
		PrivateMetadata: f.TaskID,
		Title:           plain(f.Title),
		Submit:          plain(f.Submit),
		Close:           plain("Cancel"),
		Blocks:          slack.Blocks{BlockSet: out},
	}
}

// validDate drops a re-shown value the datepicker could not display.
func validDate(raw string) string {
	if _, err := models.ParseDate(raw); err != nil {
		return ""
	}
	return raw
}
