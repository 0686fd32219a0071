package dbtest

import sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"

// Category ids used by the sample data.
const (
	CategoryScience       int64 = 1
	CategoryArt           int64 = 2
	CategoryGeography     int64 = 3
	CategoryHistory       int64 = 4
	CategoryEntertainment int64 = 5
	CategorySports        int64 = 6
)

func SampleCategories() []sqlcgen.Category {
	return []sqlcgen.Category{
		{ID: CategoryScience, Type: "Science"},
		{ID: CategoryArt, Type: "Art"},
		{ID: CategoryGeography, Type: "Geography"},
		{ID: CategoryHistory, Type: "History"},
		{ID: CategoryEntertainment, Type: "Entertainment"},
		{ID: CategorySports, Type: "Sports"},
	}
}

// SampleQuestions holds 19 questions: two pages, two of them containing "title".
func SampleQuestions() []sqlcgen.Question {
	return []sqlcgen.Question{
		{ID: 2, Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: CategoryEntertainment, Difficulty: 4},
		{ID: 4, Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: CategoryEntertainment, Difficulty: 4},
		{ID: 5, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: CategoryHistory, Difficulty: 2},
		{ID: 6, Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Category: CategoryEntertainment, Difficulty: 3},
		{ID: 9, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: CategoryHistory, Difficulty: 1},
		{ID: 10, Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: CategorySports, Difficulty: 3},
		{ID: 11, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: CategorySports, Difficulty: 4},
		{ID: 12, Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: CategoryHistory, Difficulty: 2},
		{ID: 13, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: CategoryGeography, Difficulty: 2},
		{ID: 14, Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: CategoryGeography, Difficulty: 3},
		{ID: 15, Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: CategoryGeography, Difficulty: 2},
		{ID: 16, Question: "Which Dutch graphic artist-initials M C was a creator of optical illusions?", Answer: "Escher", Category: CategoryArt, Difficulty: 1},
		{ID: 17, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: CategoryArt, Difficulty: 3},
		{ID: 18, Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: CategoryArt, Difficulty: 4},
		{ID: 19, Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", Category: CategoryArt, Difficulty: 2},
		{ID: 20, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: CategoryScience, Difficulty: 4},
		{ID: 21, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: CategoryScience, Difficulty: 3},
		{ID: 22, Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: CategoryScience, Difficulty: 4},
		{ID: 23, Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: CategoryHistory, Difficulty: 4},
	}
}
