// AngelaMos | 2026
// data.go

package main

import (
	"time"

	"github.com/angelamos/memorial/internal/martyr"
)

type seedTestimonial struct {
	author       string
	relationship string
	content      string
	date         time.Time
}

type seedSource struct {
	name string
	url  string
	date time.Time
	kind martyr.SourceType
}

type seedMartyr struct {
	name         string
	date         time.Time
	location     string
	cause        string
	description  string
	age          int
	gender       martyr.Gender
	occupation   string
	familyStatus string
	testimonials []seedTestimonial
	sources      []seedSource
}

const placeholderImage = "/placeholder.svg?height=400&width=300"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var records = []seedMartyr{
	{
		name:         "Ahmad Khalid",
		date:         day(2011, time.March, 15),
		location:     "Daraa",
		cause:        "Peaceful Protest",
		description:  "Lost his life during the early peaceful protests in Daraa. Ahmad was a local teacher who joined the demonstrations calling for democratic reforms.",
		age:          32,
		gender:       martyr.GenderMale,
		occupation:   "Teacher",
		familyStatus: "Married with two children",
		testimonials: []seedTestimonial{
			{
				author:       "Mohammed Khalid",
				relationship: "Brother",
				content:      "Ahmad was a peaceful man who believed in the power of education to change society. He never carried weapons and was committed to non-violent protest.",
				date:         day(2011, time.April, 1),
			},
			{
				author:       "Samira Nour",
				relationship: "Colleague",
				content:      "We taught at the same school for five years. Ahmad was beloved by his students and always encouraged critical thinking.",
				date:         day(2011, time.May, 1),
			},
		},
		sources: []seedSource{
			{
				name: "Syrian Human Rights Watch",
				url:  "https://example.org/reports/daraa-march-2011",
				date: day(2011, time.April, 10),
				kind: martyr.SourceReport,
			},
			{
				name: "Al-Jazeera News Report",
				url:  "https://example.org/news/early-protests",
				date: day(2011, time.March, 20),
				kind: martyr.SourceNews,
			},
		},
	},
	{
		name:         "Layla Ibrahim",
		date:         day(2011, time.April, 22),
		location:     "Homs",
		cause:        "Shelling",
		description:  "Civilian casualty during early military operations in Homs. Layla was a medical student who was volunteering at a makeshift clinic when the area was shelled.",
		age:          24,
		gender:       martyr.GenderFemale,
		occupation:   "Medical Student",
		familyStatus: "Single",
		testimonials: []seedTestimonial{
			{
				author:       "Dr. Fadi Qasim",
				relationship: "Supervisor",
				content:      "Layla showed exceptional promise as a future doctor. She was dedicated to helping others and refused to leave the city despite the dangers.",
				date:         day(2011, time.May, 1),
			},
		},
		sources: []seedSource{
			{
				name: "Doctors Without Borders Report",
				url:  "https://example.org/reports/medical-casualties-homs",
				date: day(2011, time.June, 5),
				kind: martyr.SourceReport,
			},
		},
	},
	{
		name:         "Mohammed Al-Sayid",
		date:         day(2012, time.July, 31),
		location:     "Aleppo",
		cause:        "Airstrike",
		description:  "Lost during airstrikes on residential areas in Aleppo. Mohammed was a baker who continued to provide bread to his neighborhood despite food shortages.",
		age:          45,
		gender:       martyr.GenderMale,
		occupation:   "Baker",
		familyStatus: "Married with four children",
		testimonials: []seedTestimonial{
			{
				author:       "Yasmin Al-Sayid",
				relationship: "Daughter",
				content:      "My father insisted on keeping his bakery open even as the situation worsened. He said people needed bread more than ever during the crisis.",
				date:         day(2012, time.August, 1),
			},
		},
		sources: []seedSource{
			{
				name: "Aleppo Today News",
				url:  "https://example.org/news/aleppo-airstrikes-july",
				date: day(2012, time.August, 2),
				kind: martyr.SourceNews,
			},
		},
	},
	{
		name:         "Fatima Nour",
		date:         day(2013, time.October, 14),
		location:     "Damascus",
		cause:        "Siege",
		description:  "Died due to lack of medical supplies during siege conditions. Fatima had a chronic condition that required regular medication.",
		age:          67,
		gender:       martyr.GenderFemale,
		occupation:   "Retired Teacher",
		familyStatus: "Widowed with three adult children",
		testimonials: []seedTestimonial{
			{
				author:       "Khalid Nour",
				relationship: "Son",
				content:      "We tried everything to get my mother's medication, but the siege made it impossible. She suffered greatly in her final days.",
				date:         day(2013, time.November, 1),
			},
		},
		sources: []seedSource{
			{
				name: "UN Humanitarian Report",
				url:  "https://example.org/reports/damascus-siege-impact",
				date: day(2013, time.December, 5),
				kind: martyr.SourceReport,
			},
		},
	},
	{
		name:         "Karim Masri",
		date:         day(2014, time.February, 3),
		location:     "Idlib",
		cause:        "Conflict",
		description:  "Civilian caught in crossfire during escalating conflict. Karim was returning home from work when fighting broke out in his neighborhood.",
		age:          29,
		gender:       martyr.GenderMale,
		occupation:   "Electrician",
		familyStatus: "Married with one child",
		testimonials: []seedTestimonial{
			{
				author:       "Amir Hassan",
				relationship: "Friend",
				content:      "Karim was not involved in politics or fighting. He was simply trying to support his family during difficult times.",
				date:         day(2014, time.February, 1),
			},
		},
		sources: []seedSource{
			{
				name: "Idlib Civil Defense Records",
				url:  "https://example.org/records/civilian-casualties-feb-2014",
				date: day(2014, time.March, 10),
				kind: martyr.SourceOfficial,
			},
		},
	},
	{
		name:         "Samira Khalil",
		date:         day(2015, time.August, 19),
		location:     "Raqqa",
		cause:        "Violence",
		description:  "Activist who documented human rights abuses. Samira was a journalist who continued reporting on conditions in Raqqa despite threats to her safety.",
		age:          35,
		gender:       martyr.GenderFemale,
		occupation:   "Journalist",
		familyStatus: "Single",
		testimonials: []seedTestimonial{
			{
				author:       "International Journalists Association",
				relationship: "Professional Organization",
				content:      "Samira Khalil exemplified the courage of journalists who risk everything to tell the truth. Her documentation of human rights abuses was invaluable.",
				date:         day(2015, time.September, 1),
			},
		},
		sources: []seedSource{
			{
				name: "Committee to Protect Journalists",
				url:  "https://example.org/reports/journalists-killed-syria-2015",
				date: day(2015, time.December, 15),
				kind: martyr.SourceReport,
			},
			{
				name: "Syrian Journalists Network",
				url:  "https://example.org/memorials/samira-khalil",
				date: day(2015, time.August, 25),
				kind: martyr.SourceSocial,
			},
		},
	},
}
