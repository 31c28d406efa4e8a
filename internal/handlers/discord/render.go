package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/assabeel/internal/camp"
	"github.com/KirkDiggler/assabeel/internal/ledger"
	"github.com/KirkDiggler/assabeel/internal/models"
	campService "github.com/KirkDiggler/assabeel/internal/services/camp"
	"github.com/KirkDiggler/assabeel/internal/services/season"
	"github.com/KirkDiggler/assabeel/internal/services/stats"
	"github.com/KirkDiggler/assabeel/internal/services/tracker"
	"github.com/bwmarrin/discordgo"
)

// Discord rejects embeds with more than 25 fields
const maxEmbedFields = 25

var podiumMedals = []string{"🥇", "🥈", "🥉"}

func renderSessionLogged(sess *models.Session, projectName string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Date", Value: sess.Date, Inline: true},
		{Name: "Duration", Value: ledger.FormatHoursMinutes(sess.TotalMinutes()), Inline: true},
	}
	if projectName != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Project", Value: projectName, Inline: true})
	}
	if sess.Notes != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Notes", Value: sess.Notes})
	}
	return &discordgo.MessageEmbed{
		Title:  "Session logged",
		Color:  ColorInfo,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: "id " + sess.ID},
	}
}

func renderStats(out *stats.GetUserStatsOutput) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Today", Value: fmt.Sprintf("%s (%d%% of target)", ledger.FormatHoursMinutes(out.TodayMinutes), out.TargetPercent), Inline: true},
		{Name: "This week", Value: ledger.FormatHoursMinutes(out.WeekMinutes), Inline: true},
		{Name: "This month", Value: ledger.FormatHoursMinutes(out.MonthMinutes), Inline: true},
		{Name: "All time", Value: fmt.Sprintf("%s (%s)", ledger.FormatHoursMinutes(out.TotalMinutes), ledger.FormatDuration(out.TotalMinutes)), Inline: false},
		{Name: "Rank", Value: string(out.Rank), Inline: true},
	}
	if out.NextRank != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Next rank",
			Value:  fmt.Sprintf("%s in %s", out.NextRank, ledger.FormatHoursMinutes(out.MinutesToNextRank)),
			Inline: true,
		})
	}
	for _, p := range out.Projects {
		if len(fields) >= maxEmbedFields-1 {
			break
		}
		value := ledger.FormatHoursMinutes(p.Minutes)
		if len(p.SubProjects) > 0 {
			var b strings.Builder
			b.WriteString(value)
			for _, sp := range p.SubProjects {
				fmt.Fprintf(&b, "\n- %s: %s", sp.Name, ledger.FormatHoursMinutes(sp.Minutes))
			}
			value = b.String()
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s [%s]", p.Name, p.Status),
			Value: value,
		})
	}
	if out.UnassignedMinutes > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Unassigned",
			Value: ledger.FormatHoursMinutes(out.UnassignedMinutes),
		})
	}

	name := "you"
	if out.User != nil {
		name = out.User.Name
	}
	return &discordgo.MessageEmbed{
		Title:  "Stats for " + name,
		Color:  ColorInfo,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: "as of " + out.Today},
	}
}

func renderLeaderboard(out *stats.GetLeaderboardOutput) *discordgo.MessageEmbed {
	var title string
	switch stats.Window(out.Leaderboard.Window) {
	case stats.WindowWeek:
		title = "Leaderboard: this week"
	case stats.WindowMonth:
		title = "Leaderboard: this month"
	default:
		title = "Leaderboard: all time"
	}

	if len(out.Leaderboard.Entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "Nobody has logged any time yet.",
			Color:       ColorGold,
		}
	}

	var b strings.Builder
	for idx, e := range out.Leaderboard.Entries {
		if idx >= maxEmbedFields {
			break
		}
		marker := fmt.Sprintf("%d.", e.Position)
		if e.Position <= len(podiumMedals) {
			marker = podiumMedals[e.Position-1]
		}
		fmt.Fprintf(&b, "%s **%s** %s · %s\n", marker, e.Name, ledger.FormatHoursMinutes(e.TotalMinutes), e.Rank)
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: b.String(),
		Color:       ColorGold,
	}
	if out.From != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%s to %s", out.From, out.To)}
	}
	return embed
}

// renderLives draws remaining lives as hearts
func renderLives(status *models.CampUserStatus) string {
	if status.IsEliminated {
		return "eliminated"
	}
	lost := camp.StartingLives - status.Lives
	if lost < 0 {
		lost = 0
	}
	return strings.Repeat("❤️", status.Lives) + strings.Repeat("🖤", lost)
}

// renderProgress draws one square per challenge day
func renderProgress(progress []models.DayProgress) string {
	var b strings.Builder
	for _, day := range progress {
		switch day.Status {
		case models.DayStatusSuccess:
			b.WriteString("🟩")
		case models.DayStatusFail:
			b.WriteString("🟥")
		default:
			b.WriteString("⬜")
		}
		if day.Day%10 == 0 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCampStatus(out *campService.GetUserStatusOutput) *discordgo.MessageEmbed {
	status := out.Status
	color := ColorInfo
	if status.IsEliminated {
		color = ColorError
	} else if status.Failures > 0 {
		color = ColorWarning
	}
	return &discordgo.MessageEmbed{
		Title: "Camp: " + status.Name,
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Lives", Value: renderLives(status), Inline: true},
			{Name: "Streak", Value: fmt.Sprintf("%d days", status.CurrentStreak), Inline: true},
			{Name: "Position", Value: fmt.Sprintf("%d of %d", out.Position, out.Participants), Inline: true},
			{Name: "Progress", Value: renderProgress(status.Progress)},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("started %s · today %s", out.StartDate, out.Today)},
	}
}

func renderCampBoard(out *campService.EvaluateCampOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("Camp %s to %s", out.StartDate, out.EndDate),
		Color:  ColorGold,
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("goal %s a day · today %s", ledger.FormatHoursMinutes(out.DailyGoalMinutes), out.Today)},
	}
	if len(out.Statuses) == 0 {
		embed.Description = "Nobody has joined yet."
		return embed
	}

	var b strings.Builder
	for idx, status := range out.Statuses {
		if idx >= maxEmbedFields {
			break
		}
		fmt.Fprintf(&b, "%d. **%s** %s streak %d\n", idx+1, status.Name, renderLives(status), status.CurrentStreak)
	}
	embed.Description = b.String()
	return embed
}

func renderProjects(trees []*tracker.ProjectTree) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Projects",
		Color: ColorInfo,
	}
	if len(trees) == 0 {
		embed.Description = "No projects yet. Add one with /sabeel project add."
		return embed
	}
	for _, tree := range trees {
		if len(embed.Fields) >= maxEmbedFields {
			break
		}
		var b strings.Builder
		fmt.Fprintf(&b, "status %s · id `%s`", tree.Project.Status, tree.Project.ID)
		for _, sp := range tree.SubProjects {
			fmt.Fprintf(&b, "\n- %s [%s] `%s`", sp.Name, sp.Status, sp.ID)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  tree.Project.Name,
			Value: b.String(),
		})
	}
	return embed
}

func renderSeasons(seasons []*models.Season, today string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Seasons",
		Color: ColorGold,
	}
	if len(seasons) == 0 {
		embed.Description = "No seasons yet."
		return embed
	}
	for _, s := range seasons {
		if len(embed.Fields) >= maxEmbedFields {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  s.Name,
			Value: fmt.Sprintf("%s to %s · %s", s.StartDate, s.EndDate, seasonState(s, today)),
		})
	}
	return embed
}

func seasonState(s *models.Season, today string) string {
	switch {
	case s.IsArchived():
		return "champion <@" + s.Champion + ">"
	case s.Draft:
		return "draft"
	case s.Contains(today):
		return "running"
	case today < s.StartDate:
		return "upcoming"
	default:
		return "awaiting archive"
	}
}

func renderArchive(out *season.ArchiveFinishedSeasonsOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Season archive",
		Color:       ColorGold,
		Description: fmt.Sprintf("%d archived, %d deleted", out.ArchivedCount, out.DeletedCount),
	}
	for _, o := range out.Outcomes {
		if len(embed.Fields) >= maxEmbedFields {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  o.Name,
			Value: describeOutcome(o),
		})
	}
	return embed
}

func describeOutcome(o *season.SeasonOutcome) string {
	switch {
	case o.Skipped:
		return "already archived elsewhere"
	case o.Deleted:
		return "no survivors, season removed"
	}
	text := "champion <@" + o.Champion + ">"
	if len(o.Survivors) > 0 {
		mentions := make([]string, len(o.Survivors))
		for i, id := range o.Survivors {
			mentions[i] = "<@" + id + ">"
		}
		text += "\nsurvivors " + strings.Join(mentions, ", ")
	}
	return text
}

// renderSeasonAnnouncement returns nil for events that are not announced
func renderSeasonAnnouncement(event *models.Event, s *models.Season) *discordgo.MessageEmbed {
	if s == nil {
		return nil
	}
	switch event.Type {
	case models.EventSeasonCreated:
		if s.Draft {
			return nil
		}
		return &discordgo.MessageEmbed{
			Title:       "New season: " + s.Name,
			Description: fmt.Sprintf("Runs %s to %s. Log your hours every day to survive.", s.StartDate, s.EndDate),
			Color:       ColorInfo,
		}
	case models.EventSeasonArchived:
		if !s.IsArchived() {
			return nil
		}
		return &discordgo.MessageEmbed{
			Title: "Season finished: " + s.Name,
			Description: describeOutcome(&season.SeasonOutcome{
				SeasonID:  s.ID,
				Name:      s.Name,
				Champion:  s.Champion,
				Survivors: s.Survivors,
			}),
			Color: ColorGold,
		}
	}
	return nil
}
