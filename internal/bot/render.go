package bot

import (
	"fmt"
	"strings"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/models"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
)

// maxItems caps a listing so a reply stays under Telegram's message limit.
const maxItems = 10

// escapeMarkdown escapes the characters MarkdownV2 reserves.
func escapeMarkdown(text string) string {
	specialChars := []string{"\\", "_", "*", "[", "]", "(", ")", "~", "`", ">", "#", "+", "-", "=", "|", "{", "}", ".", "!"}
	escaped := text
	for _, char := range specialChars {
		escaped = strings.ReplaceAll(escaped, char, "\\"+char)
	}
	return escaped
}

func writeHeader(b *strings.Builder, title string, shown, total int, s Session) {
	fmt.Fprintf(b, "*%s* %s\n", escapeMarkdown(title), escapeMarkdown(fmt.Sprintf("(%d of %d)", shown, total)))
	if s.Tab != "" {
		fmt.Fprintf(b, "Tab: %s\n", escapeMarkdown(s.Tab))
	}
	if !pipeline.IsBlank(s.Search) {
		fmt.Fprintf(b, "Search: _%s_\n", escapeMarkdown(s.Search))
	}
	if !s.Facets.IsEmpty() {
		var parts []string
		for _, group := range s.Facets.Groups() {
			parts = append(parts, group+"="+strings.Join(s.Facets.Selected(group), ","))
		}
		fmt.Fprintf(b, "Filters: %s\n", escapeMarkdown(strings.Join(parts, " ")))
	}
	b.WriteString("\n")
}

func writeEmpty(b *strings.Builder, title, message string) {
	fmt.Fprintf(b, "*%s*\n", escapeMarkdown(title))
	if message != "" {
		b.WriteString(escapeMarkdown(message) + "\n")
	}
}

func writeMore(b *strings.Builder, total int) {
	if total > maxItems {
		b.WriteString(escapeMarkdown(fmt.Sprintf("...and %d more. Narrow the search to see them.", total-maxItems)) + "\n")
	}
}

func renderAlumni(r catalog.Result[models.Profile], s Session) string {
	var b strings.Builder
	writeHeader(&b, "Alumni", len(r.Items), r.Total, s)
	if r.Empty() {
		writeEmpty(&b, r.Title, r.Message)
		return b.String()
	}
	for i, p := range r.Items {
		if i == maxItems {
			break
		}
		line := p.Role
		if p.Company != nil {
			line += " at " + *p.Company
		}
		fmt.Fprintf(&b, "*%s* %s\n", escapeMarkdown(p.Name), escapeMarkdown("#"+p.ID))
		b.WriteString(escapeMarkdown(line) + "\n")

		details := []string{fmt.Sprintf("Class of %d", p.GraduationYear), p.Department}
		if p.Location != nil {
			details = append(details, *p.Location)
		}
		if p.Connection != models.ConnectionNone {
			details = append(details, string(p.Connection))
		}
		b.WriteString(escapeMarkdown(strings.Join(details, " · ")) + "\n\n")
	}
	writeMore(&b, len(r.Items))
	return b.String()
}

func renderJobs(r catalog.Result[catalog.JobCard], s Session) string {
	var b strings.Builder
	writeHeader(&b, "Jobs", len(r.Items), r.Total, s)
	if r.Empty() {
		writeEmpty(&b, r.Title, r.Message)
		return b.String()
	}
	for i, j := range r.Items {
		if i == maxItems {
			break
		}
		title := fmt.Sprintf("*%s* %s", escapeMarkdown(j.Title), escapeMarkdown("#"+j.ID))
		if j.IsNew {
			title += " 🆕"
		}
		b.WriteString(title + "\n")
		b.WriteString(escapeMarkdown(fmt.Sprintf("%s · %s · %s", j.Company, j.Location, j.EmploymentType)) + "\n")

		meta := []string{"Posted " + strings.ToLower(j.AgeLabel)}
		if j.DeadlineLabel != "" {
			meta = append(meta, j.DeadlineLabel)
		}
		if j.Salary != nil {
			meta = append(meta, *j.Salary)
		}
		if j.Saved {
			meta = append(meta, "saved")
		}
		if j.Applied {
			meta = append(meta, "applied")
		}
		b.WriteString(escapeMarkdown(strings.Join(meta, " · ")) + "\n\n")
	}
	writeMore(&b, len(r.Items))
	return b.String()
}

func renderEvents(r catalog.Result[catalog.EventCard], s Session) string {
	var b strings.Builder
	writeHeader(&b, "Events", len(r.Items), r.Total, s)
	if r.Empty() {
		writeEmpty(&b, r.Title, r.Message)
		return b.String()
	}
	for i, e := range r.Items {
		if i == maxItems {
			break
		}
		fmt.Fprintf(&b, "*%s* %s\n", escapeMarkdown(e.Title), escapeMarkdown("#"+e.ID))

		where := "Virtual"
		if !e.IsOnline && e.Location != nil {
			where = *e.Location
		}
		b.WriteString(escapeMarkdown(fmt.Sprintf("%s · %s · %s", e.DateLabel, e.StartTime, where)) + "\n")

		meta := []string{string(e.Status), fmt.Sprintf("%d attending", e.AttendeeCount)}
		if e.IsFull {
			meta = append(meta, "full")
		}
		if e.RSVP != models.RSVPNone {
			meta = append(meta, "you: "+string(e.RSVP))
		}
		b.WriteString(escapeMarkdown(strings.Join(meta, " · ")) + "\n\n")
	}
	writeMore(&b, len(r.Items))
	return b.String()
}

func renderCommunities(r catalog.Result[models.Community], s Session) string {
	var b strings.Builder
	writeHeader(&b, "Communities", len(r.Items), r.Total, s)
	if r.Empty() {
		writeEmpty(&b, r.Title, r.Message)
		return b.String()
	}
	for i, c := range r.Items {
		if i == maxItems {
			break
		}
		line := fmt.Sprintf("%d members", c.Members)
		if c.Joined {
			line += " · joined"
		}
		fmt.Fprintf(&b, "*%s* %s\n", escapeMarkdown(c.Name), escapeMarkdown("#"+c.ID))
		b.WriteString(escapeMarkdown(c.Description) + "\n")
		b.WriteString(escapeMarkdown(line) + "\n\n")
	}
	writeMore(&b, len(r.Items))
	return b.String()
}

func renderConversations(r catalog.Result[catalog.ConversationSummary], s Session) string {
	var b strings.Builder
	writeHeader(&b, "Messages", len(r.Items), r.Total, s)
	if r.Empty() {
		writeEmpty(&b, r.Title, r.Message)
		return b.String()
	}
	for i, c := range r.Items {
		if i == maxItems {
			break
		}
		title := fmt.Sprintf("*%s* %s", escapeMarkdown(c.With.Name), escapeMarkdown("#"+c.ID))
		if c.Unread > 0 {
			title += escapeMarkdown(fmt.Sprintf(" (%d unread)", c.Unread))
		}
		b.WriteString(title + "\n")
		if c.LastMessage != nil {
			b.WriteString(escapeMarkdown(c.TimeText+" "+c.LastMessage.Text) + "\n")
		} else {
			b.WriteString("_No messages yet_\n")
		}
		b.WriteString("\n")
	}
	writeMore(&b, len(r.Items))
	return b.String()
}

func renderThread(view catalog.ThreadView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", escapeMarkdown(view.With.Name))
	if len(view.Buckets) == 0 {
		b.WriteString("_No messages yet\\. Say hello with /send_\n")
		return b.String()
	}
	for _, bucket := range view.Buckets {
		fmt.Fprintf(&b, "\n_%s_\n", escapeMarkdown(bucket.Label))
		for _, m := range bucket.Items {
			b.WriteString(escapeMarkdown(fmt.Sprintf("%s %s: %s", m.TimeText, m.SenderName, m.Text)) + "\n")
		}
	}
	return b.String()
}

// facetView is a facet stripped of its record type, for listing.
type facetView struct {
	ID      string
	Label   string
	Options []pipeline.Option
}

func facetViews[T any](facets []pipeline.Facet[T]) []facetView {
	views := make([]facetView, len(facets))
	for i, f := range facets {
		views[i] = facetView{ID: f.ID, Label: f.Label, Options: f.Options}
	}
	return views
}

func renderFacets(facets []facetView, sel pipeline.Selection) string {
	var b strings.Builder
	b.WriteString("*Filters*\n")
	for _, f := range facets {
		fmt.Fprintf(&b, "\n*%s* \\(%s\\)\n", escapeMarkdown(f.Label), escapeMarkdown(f.ID))
		selected := make(map[string]bool)
		for _, o := range sel.Selected(f.ID) {
			selected[o] = true
		}
		for _, o := range f.Options {
			mark := "☐"
			if selected[o.ID] {
				mark = "☑"
			}
			b.WriteString(escapeMarkdown(fmt.Sprintf("%s %s (%s)", mark, o.Label, o.ID)) + "\n")
		}
	}
	b.WriteString("\n" + escapeMarkdown("Toggle with /filter <group> <option>") + "\n")
	return b.String()
}

func writeSection(b *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "\n*%s*\n", escapeMarkdown(title))
	for _, line := range lines {
		b.WriteString(escapeMarkdown("• "+line) + "\n")
	}
}

func renderJobDetail(d catalog.Detail[catalog.JobCard]) string {
	var b strings.Builder
	if !d.Found {
		writeEmpty(&b, d.Title, d.Message)
		return b.String()
	}
	j := d.Item
	fmt.Fprintf(&b, "*%s* %s\n", escapeMarkdown(j.Title), escapeMarkdown("#"+j.ID))
	b.WriteString(escapeMarkdown(fmt.Sprintf("%s · %s · %s", j.Company, j.Location, j.EmploymentType)) + "\n")

	meta := []string{"Posted " + strings.ToLower(j.AgeLabel)}
	if j.ExperienceLevel != nil {
		meta = append(meta, *j.ExperienceLevel)
	}
	if j.Salary != nil {
		meta = append(meta, *j.Salary)
	}
	if j.DeadlineLabel != "" {
		meta = append(meta, j.DeadlineLabel)
	}
	b.WriteString(escapeMarkdown(strings.Join(meta, " · ")) + "\n")
	if j.Description != "" {
		b.WriteString("\n" + escapeMarkdown(j.Description) + "\n")
	}
	writeSection(&b, "Responsibilities", j.Responsibilities)
	writeSection(&b, "Requirements", j.Requirements)
	if len(j.Skills) > 0 {
		fmt.Fprintf(&b, "\n*Skills*\n%s\n", escapeMarkdown(strings.Join(j.Skills, ", ")))
	}
	writeSection(&b, "Benefits", j.Benefits)
	if j.PostedByName != "" {
		b.WriteString("\n" + escapeMarkdown("Posted by "+j.PostedByName) + "\n")
	}

	if j.Applied {
		b.WriteString(escapeMarkdown("You have applied to this job.") + "\n")
	} else {
		b.WriteString(escapeMarkdown(fmt.Sprintf("Apply with /apply %s", j.ID)) + "\n")
	}
	return b.String()
}

func renderProfile(d catalog.Detail[models.Profile]) string {
	var b strings.Builder
	if !d.Found {
		writeEmpty(&b, d.Title, d.Message)
		return b.String()
	}
	p := d.Item
	fmt.Fprintf(&b, "*%s* %s\n", escapeMarkdown(p.Name), escapeMarkdown("#"+p.ID))
	line := p.Role
	if p.Company != nil {
		line += " at " + *p.Company
	}
	b.WriteString(escapeMarkdown(line) + "\n")
	details := []string{fmt.Sprintf("Class of %d", p.GraduationYear), p.Department}
	if p.Location != nil {
		details = append(details, *p.Location)
	}
	b.WriteString(escapeMarkdown(strings.Join(details, " · ")) + "\n")

	if p.About != "" {
		fmt.Fprintf(&b, "\n*About*\n%s\n", escapeMarkdown(p.About))
	}

	experience := make([]string, len(p.Experience))
	for i, e := range p.Experience {
		end := e.EndDate
		if e.Current {
			end = "Present"
		}
		experience[i] = joinParts(e.Role+" at "+e.Company, e.StartDate+" - "+end, e.Location)
	}
	writeSection(&b, "Experience", experience)

	education := make([]string, len(p.Education))
	for i, e := range p.Education {
		education[i] = joinParts(e.Degree+", "+e.Institution, e.Department, e.Year)
	}
	writeSection(&b, "Education", education)

	if len(p.Skills) > 0 {
		fmt.Fprintf(&b, "\n*Skills*\n%s\n", escapeMarkdown(strings.Join(p.Skills, ", ")))
	}

	achievements := make([]string, len(p.Achievements))
	for i, a := range p.Achievements {
		achievements[i] = joinParts(a.Title, a.Year)
	}
	writeSection(&b, "Achievements", achievements)

	switch p.Connection {
	case models.ConnectionConnected:
		b.WriteString("\n" + escapeMarkdown("Connected. Message them with /send.") + "\n")
	case models.ConnectionPending:
		b.WriteString("\n" + escapeMarkdown("Connection request pending.") + "\n")
	default:
		b.WriteString("\n" + escapeMarkdown(fmt.Sprintf("Connect with /connect %s", p.ID)) + "\n")
	}
	return b.String()
}

func joinParts(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " · ")
}
