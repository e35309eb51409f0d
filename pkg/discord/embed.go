package discord

import (
	"fmt"
	"math/rand/v2"

	"github.com/bwmarrin/discordgo"
	"github.com/goodsign/monday"

	"edtbot/pkg/timetable"
)

const (
	embedColor = 0xff0000
	blankLine  = "​"

	emojiTeacher = ":teacher:"
	emojiPlace   = ":pushpin:"
	emojiLink    = ":link:"
)

// restImages is the pool of illustrations posted on a day without
// classes; one is picked at random.
var restImages = []string{
	"https://i.kym-cdn.com/entries/icons/original/000/034/981/cover5.jpg",
	"https://pbs.twimg.com/media/DlPW9AAW4AAs2O9.jpg:large",
	"https://i.pinimg.com/736x/9b/dc/a0/9bdca0ce9495c9e2fe0d011dd3b6d157.jpg",
	"https://newfastuff.com/wp-content/uploads/2019/06/ZYD2wDy.png",
	"https://i.imgflip.com/4nfm9a.jpg",
	"https://i.imgflip.com/4svgqu.png",
	"https://indianmemetemplates.com/wp-content/uploads/Sick-Spider-man.jpg",
}

var groupEmojis = map[string]string{
	"1": ":one:",
	"2": ":two:",
	"3": ":three:",
	"4": ":four:",
}

var categoryEmojis = map[timetable.Category]string{
	timetable.CategoryLecture:       ":orange_book:",
	timetable.CategoryDirectedWork:  ":blue_book:",
	timetable.CategoryPracticalWork: ":closed_book:",
	timetable.CategorySpecial:       ":mega:",
	timetable.CategorySport:         ":person_running:",
	timetable.CategoryLanguage:      ":speaking_head:",
	timetable.CategoryProject:       ":technologist:",
}

// BuildEmbed renders a day's timetable as a Discord embed. Three
// shapes exist: a rest-day image when there are no lessons, a single
// list when every lesson applies to all groups, and one list per group
// otherwise (shared lessons repeated in each group's list).
func BuildEmbed(t *timetable.Timetable) *discordgo.MessageEmbed {
	title := bold("Emploi du temps du "+formatDate(t)+" :") + "\n"

	if len(t.Lessons) == 0 {
		return restEmbed(title)
	}
	if t.SharedOnly() {
		return sharedEmbed(title, t)
	}
	return mixedEmbed(title, t)
}

func formatDate(t *timetable.Timetable) string {
	return monday.Format(t.Date, "Monday 2 January 2006", monday.LocaleFrFR)
}

func bold(text string) string {
	return "**" + text + "**"
}

func restEmbed(title string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: title,
		Color: embedColor,
		Image: &discordgo.MessageEmbedImage{
			URL: restImages[rand.IntN(len(restImages))],
		},
	}
}

// sharedEmbed lists every lesson once, under a header naming all the
// groups.
func sharedEmbed(title string, t *timetable.Timetable) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Color:       embedColor,
		Description: blankLine,
	}

	header := "Groupes"
	for _, group := range t.Groups {
		header += " " + groupEmojis[group]
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  header,
		Value: blankLine,
	})

	for i, lesson := range t.Lessons {
		field := lessonField(lesson)
		if i != len(t.Lessons)-1 {
			field.Value += "\n" + blankLine
		}
		embed.Fields = append(embed.Fields, field)
	}

	return embed
}

// mixedEmbed lists the day group by group, each group seeing only the
// lessons that apply to it.
func mixedEmbed(title string, t *timetable.Timetable) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Color:       embedColor,
		Description: blankLine,
	}

	for g, group := range t.Groups {
		var lessons []timetable.Lesson
		for _, lesson := range t.Lessons {
			if lessonAppliesTo(lesson, group) {
				lessons = append(lessons, lesson)
			}
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Groupe " + groupEmojis[group],
			Value: blankLine,
		})

		for i, lesson := range lessons {
			field := lessonField(lesson)
			if i != len(lessons)-1 {
				field.Value += "\n" + blankLine
			} else if g != len(t.Groups)-1 {
				field.Value += "\n" + blankLine + "\n" + blankLine
			}
			embed.Fields = append(embed.Fields, field)
		}
	}

	return embed
}

func lessonAppliesTo(lesson timetable.Lesson, group string) bool {
	for _, g := range lesson.Groups {
		if g == group {
			return true
		}
	}
	return false
}

// lessonField renders one lesson: the time span as the field name, the
// annotated title with teacher, room and link lines as the value.
func lessonField(lesson timetable.Lesson) *discordgo.MessageEmbedField {
	name := fmt.Sprintf("%s %s - %s", clockEmoji(lesson.Start), lesson.Start, lesson.End)

	var value string
	if emoji, ok := categoryEmojis[lesson.Category]; ok {
		value = emoji + " "
	}
	value += lesson.Title

	switch lesson.Category {
	case timetable.CategoryLecture, timetable.CategoryDirectedWork, timetable.CategoryPracticalWork:
		value += " [" + lesson.Category.Code() + "]"
	}

	if lesson.Teacher != "" {
		value += "\n" + emojiTeacher + " " + lesson.Teacher
	}
	if lesson.Place != "" {
		value += "\n" + emojiPlace + " " + lesson.Place
	}
	if lesson.Link != "" {
		value += "\n" + emojiLink + " " + lesson.Link
	}

	return &discordgo.MessageEmbedField{Name: name, Value: value}
}

// clockEmoji picks the clock face closest to the start time; Discord
// only has faces for full and half hours.
func clockEmoji(start timetable.Clock) string {
	hour := start.Hour
	if hour > 12 {
		hour -= 12
	}
	if start.Minute == 30 {
		return fmt.Sprintf(":clock%d30:", hour)
	}
	return fmt.Sprintf(":clock%d:", hour)
}
