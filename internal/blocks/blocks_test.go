package blocks

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"todohome/internal/models"
	"todohome/internal/view"
)

var now = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func mustDate(t *testing.T, raw string) *time.Time {
	t.Helper()
	d, err := models.ParseDate(raw)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	return d
}

// payload marshals v and decodes it back into generic JSON.
func payload(t *testing.T, v any) (map[string]any, string) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	return out, string(raw)
}

func blockList(t *testing.T, p map[string]any) []map[string]any {
	t.Helper()
	raw, ok := p["blocks"].([]any)
	if !ok {
		t.Fatalf("Expected blocks array, got %T", p["blocks"])
	}
	out := make([]map[string]any, 0, len(raw))
	for _, b := range raw {
		out = append(out, b.(map[string]any))
	}
	return out
}

func textOf(b map[string]any) string {
	obj, _ := b["text"].(map[string]any)
	s, _ := obj["text"].(string)
	return s
}

func TestHomeEmpty(t *testing.T) {
	t.Parallel()

	v := Home(view.Compose("U1", nil, models.FilterInbox, now))
	p, _ := payload(t, v)
	if p["type"] != "home" {
		t.Fatalf("Expected home view, got %v", p["type"])
	}

	bl := blockList(t, p)
	types := make([]string, 0, len(bl))
	for _, b := range bl {
		types = append(types, b["type"].(string))
	}
	want := "header,section,actions,section,divider,section,section"
	if got := strings.Join(types, ","); got != want {
		t.Errorf("Expected blocks %s, got %s", want, got)
	}
	if !strings.Contains(textOf(bl[len(bl)-1]), "No todos yet") {
		t.Errorf("Expected empty placeholder, got %q", textOf(bl[len(bl)-1]))
	}
}

func TestHomeFilterInitialOption(t *testing.T) {
	t.Parallel()

	p, _ := payload(t, Home(view.Compose("U1", nil, models.FilterOverdue, now)))

	var radio map[string]any
	for _, b := range blockList(t, p) {
		if acc, ok := b["accessory"].(map[string]any); ok && acc["type"] == "radio_buttons" {
			radio = acc
		}
	}
	if radio == nil {
		t.Fatal("Expected radio_buttons accessory")
	}
	if radio["action_id"] != "change_filter" {
		t.Errorf("Unexpected action id %v", radio["action_id"])
	}
	if opts, _ := radio["options"].([]any); len(opts) != 3 {
		t.Errorf("Expected 3 options, got %v", radio["options"])
	}
	initial, _ := radio["initial_option"].(map[string]any)
	if initial["value"] != "overdue" || textOf(initial) != "Overdue" {
		t.Errorf("Unexpected initial option %v", initial)
	}
}

func TestHomeTaskAndCompletedBlocks(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		{ID: "A", Text: "late", DueDate: mustDate(t, "2026-10-10")},
		{ID: "Z", Text: "done", Completed: true},
	}
	_, body := payload(t, Home(view.Compose("U1", tasks, models.FilterOverdue, now)))

	for _, want := range []string{
		`"*late*\n*Overdue:* 2026-10-10"`,
		`"action_id":"complete_todo"`,
		`"action_id":"edit_todo"`,
		`"style":"danger"`,
		`"~done~"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected payload to contain %s", want)
		}
	}
}

func TestHomeUpcomingDueLine(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{{ID: "B", Text: "soon", DueDate: mustDate(t, "2026-10-20")}}
	_, body := payload(t, Home(view.Compose("U1", tasks, models.FilterUpcoming, now)))

	if !strings.Contains(body, `"*soon*\nDue: 2026-10-20"`) {
		t.Errorf("Expected plain due line in %s", body)
	}
	if strings.Contains(body, "*Overdue:*") {
		t.Error("Expected no overdue variant for an upcoming task")
	}
}

func inputs(t *testing.T, p map[string]any) map[string]map[string]any {
	t.Helper()
	out := map[string]map[string]any{}
	for _, b := range blockList(t, p) {
		if b["type"] == "input" {
			el, _ := b["element"].(map[string]any)
			out[b["block_id"].(string)] = el
		}
	}
	return out
}

func TestFormEditPayload(t *testing.T) {
	t.Parallel()

	f := view.EditTaskForm(models.Task{ID: "T1", Text: "call", Assignee: "U2", DueDate: mustDate(t, "2026-10-20")})
	p, _ := payload(t, Form(f))

	if p["type"] != "modal" || p["callback_id"] != "update_todo" || p["private_metadata"] != "T1" {
		t.Fatalf("Unexpected modal %v", p)
	}
	in := inputs(t, p)
	if in["todo_text"]["initial_value"] != "call" || in["todo_text"]["type"] != "plain_text_input" {
		t.Errorf("Expected text input pre-filled, got %v", in["todo_text"])
	}
	if in["todo_assign"]["initial_user"] != "U2" || in["todo_assign"]["type"] != "users_select" {
		t.Errorf("Expected assignee pre-filled, got %v", in["todo_assign"])
	}
	if in["todo_due"]["initial_date"] != "2026-10-20" || in["todo_due"]["type"] != "datepicker" {
		t.Errorf("Expected due date pre-filled, got %v", in["todo_due"])
	}
}

func TestFormShowsErrorAndDropsBadDate(t *testing.T) {
	t.Parallel()

	p, _ := payload(t, Form(view.NewTaskForm().WithValues("", "soon", "", "Text is required")))
	if p["callback_id"] != "create_todo" {
		t.Fatalf("Unexpected callback %v", p["callback_id"])
	}
	bl := blockList(t, p)
	if !strings.Contains(textOf(bl[1]), "Text is required") {
		t.Errorf("Expected error section, got %v", bl[1])
	}
	if d, ok := inputs(t, p)["todo_due"]["initial_date"]; ok {
		t.Errorf("Expected invalid date dropped, got %v", d)
	}
}
