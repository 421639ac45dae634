package sample

import "trivia-quiz-service/internal/domain"

// questionBank is the general knowledge bank; category quizzes draw from it.
var questionBank = []domain.Question{
	{
		ID:     "q1",
		Prompt: "What is the capital of France?",
		Options: []domain.Option{
			{ID: "a", Text: "London"},
			{ID: "b", Text: "Berlin"},
			{ID: "c", Text: "Paris"},
			{ID: "d", Text: "Madrid"},
		},
		CorrectOptionID: "c",
		Explanation:     "Paris is the capital and most populous city of France.",
		Category:        "Geography",
		Difficulty:      domain.DifficultyEasy,
	},
	{
		ID:     "q2",
		Prompt: "Which planet is known as the Red Planet?",
		Options: []domain.Option{
			{ID: "a", Text: "Venus"},
			{ID: "b", Text: "Mars"},
			{ID: "c", Text: "Jupiter"},
			{ID: "d", Text: "Saturn"},
		},
		CorrectOptionID: "b",
		Explanation:     "Mars is called the Red Planet due to its reddish appearance caused by iron oxide on its surface.",
		Category:        "Science",
		Difficulty:      domain.DifficultyMedium,
	},
	{
		ID:     "q3",
		Prompt: "What is the largest mammal in the world?",
		Options: []domain.Option{
			{ID: "a", Text: "African Elephant"},
			{ID: "b", Text: "Blue Whale"},
			{ID: "c", Text: "Giraffe"},
			{ID: "d", Text: "Polar Bear"},
		},
		CorrectOptionID: "b",
		Explanation:     "The Blue Whale is the largest mammal and the largest animal ever known to have lived on Earth.",
		Category:        "Biology",
		Difficulty:      domain.DifficultyEasy,
	},
	{
		ID:     "q4",
		Prompt: "Who wrote the play 'Romeo and Juliet'?",
		Options: []domain.Option{
			{ID: "a", Text: "William Wordsworth"},
			{ID: "b", Text: "Jane Austen"},
			{ID: "c", Text: "William Shakespeare"},
			{ID: "d", Text: "Leo Tolstoy"},
		},
		CorrectOptionID: "c",
		Explanation:     "William Shakespeare is the author of the famous tragedy 'Romeo and Juliet'.",
		Category:        "Literature",
		Difficulty:      domain.DifficultyMedium,
	},
	{
		ID:     "q5",
		Prompt: "What is the chemical symbol for Gold?",
		Options: []domain.Option{
			{ID: "a", Text: "Go"},
			{ID: "b", Text: "Au"},
			{ID: "c", Text: "Ag"},
			{ID: "d", Text: "Gd"},
		},
		CorrectOptionID: "b",
		Explanation:     "Gold has the chemical symbol 'Au' from its Latin name 'Aurum'.",
		Category:        "Chemistry",
		Difficulty:      domain.DifficultyEasy,
	},
	{
		ID:     "q6",
		Prompt: "Which country hosted the 2016 Summer Olympics?",
		Options: []domain.Option{
			{ID: "a", Text: "China"},
			{ID: "b", Text: "Brazil"},
			{ID: "c", Text: "UK"},
			{ID: "d", Text: "Russia"},
		},
		CorrectOptionID: "b",
		Explanation:     "The 2016 Summer Olympics were held in Rio de Janeiro, Brazil.",
		Category:        "Sports",
		Difficulty:      domain.DifficultyEasy,
	},
	{
		ID:     "q7",
		Prompt: "What is H2O commonly known as?",
		Options: []domain.Option{
			{ID: "a", Text: "Oxygen"},
			{ID: "b", Text: "Salt"},
			{ID: "c", Text: "Water"},
			{ID: "d", Text: "Hydrogen"},
		},
		CorrectOptionID: "c",
		Explanation:     "H2O is the chemical formula for water.",
		Category:        "Chemistry",
		Difficulty:      domain.DifficultyEasy,
	},
	{
		ID:     "q8",
		Prompt: "Who painted the Mona Lisa?",
		Options: []domain.Option{
			{ID: "a", Text: "Pablo Picasso"},
			{ID: "b", Text: "Vincent Van Gogh"},
			{ID: "c", Text: "Leonardo da Vinci"},
			{ID: "d", Text: "Michelangelo"},
		},
		CorrectOptionID: "c",
		Explanation:     "Leonardo da Vinci painted the Mona Lisa during the Renaissance.",
		Category:        "Art",
		Difficulty:      domain.DifficultyMedium,
	},
	{
		ID:     "q9",
		Prompt: "Which is the smallest prime number?",
		Options: []domain.Option{
			{ID: "a", Text: "0"},
			{ID: "b", Text: "1"},
			{ID: "c", Text: "2"},
			{ID: "d", Text: "3"},
		},
		CorrectOptionID: "c",
		Explanation:     "2 is the smallest and the only even prime number.",
		Category:        "Mathematics",
		Difficulty:      domain.DifficultyEasy,
	},
	{
		ID:     "q10",
		Prompt: "Who was the first man to step on the moon?",
		Options: []domain.Option{
			{ID: "a", Text: "Buzz Aldrin"},
			{ID: "b", Text: "Yuri Gagarin"},
			{ID: "c", Text: "Neil Armstrong"},
			{ID: "d", Text: "Michael Collins"},
		},
		CorrectOptionID: "c",
		Explanation:     "Neil Armstrong stepped on the moon on July 20, 1969.",
		Category:        "History",
		Difficulty:      domain.DifficultyMedium,
	},
	{
		ID:     "q11",
		Prompt: "Which organ is responsible for pumping blood in the human body?",
		Options: []domain.Option{
			{ID: "a", Text: "Brain"},
			{ID: "b", Text: "Lungs"},
			{ID: "c", Text: "Heart"},
			{ID: "d", Text: "Liver"},
		},
		CorrectOptionID: "c",
		Explanation:     "The heart pumps blood throughout the body.",
		Category:        "Biology",
		Difficulty:      domain.DifficultyEasy,
	},
	{
		ID:     "q12",
		Prompt: "What is the square root of 64?",
		Options: []domain.Option{
			{ID: "a", Text: "6"},
			{ID: "b", Text: "7"},
			{ID: "c", Text: "8"},
			{ID: "d", Text: "9"},
		},
		CorrectOptionID: "c",
		Explanation:     "The square root of 64 is 8.",
		Category:        "Mathematics",
		Difficulty:      domain.DifficultyEasy,
	},
	{
		ID:     "q13",
		Prompt: "Which language is primarily spoken in Brazil?",
		Options: []domain.Option{
			{ID: "a", Text: "Spanish"},
			{ID: "b", Text: "Portuguese"},
			{ID: "c", Text: "English"},
			{ID: "d", Text: "French"},
		},
		CorrectOptionID: "b",
		Explanation:     "Portuguese is the official language of Brazil.",
		Category:        "Geography",
		Difficulty:      domain.DifficultyMedium,
	},
	{
		ID:     "q14",
		Prompt: "What does CPU stand for?",
		Options: []domain.Option{
			{ID: "a", Text: "Central Processing Unit"},
			{ID: "b", Text: "Computer Processing Unit"},
			{ID: "c", Text: "Control Panel Unit"},
			{ID: "d", Text: "Central Power Unit"},
		},
		CorrectOptionID: "a",
		Explanation:     "CPU stands for Central Processing Unit, the brain of the computer.",
		Category:        "Technology",
		Difficulty:      domain.DifficultyEasy,
	},
	{
		ID:     "q15",
		Prompt: "Who is the author of 'Harry Potter'?",
		Options: []domain.Option{
			{ID: "a", Text: "J.K. Rowling"},
			{ID: "b", Text: "Stephen King"},
			{ID: "c", Text: "George R.R. Martin"},
			{ID: "d", Text: "J.R.R. Tolkien"},
		},
		CorrectOptionID: "a",
		Explanation:     "J.K. Rowling is the British author of the Harry Potter series.",
		Category:        "Literature",
		Difficulty:      domain.DifficultyEasy,
	},
}
