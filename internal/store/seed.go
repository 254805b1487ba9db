package store

import (
	"time"

	"github.com/P3chys/studyqa-api/internal/models"
)

// Seeded counters describe community history that predates the loaded
// answers, so AnswerCount may exceed the number of seeded answers.

func seedQuestions() []models.Question {
	beginner := models.DifficultyBeginner
	intermediate := models.DifficultyIntermediate

	return []models.Question{
		{
			ID:          "1",
			Title:       "How do I solve quadratic equations using the quadratic formula?",
			Description: "I understand the basic concept but I am struggling with applying the formula to real problems. Can someone explain step by step?",
			Subject:     models.SubjectMath,
			Difficulty:  difficultyPtr(beginner),
			Tags:        []string{"algebra", "equations"},
			AuthorID:    "user-1",
			Attachments: []models.Attachment{},
			Upvotes:     42,
			AnswerCount: 3,
			CreatedAt:   seedDate(2024, 1, 15, 0, 0),
			IsSolved:    true,
		},
		{
			ID:          "2",
			Title:       "Understanding React hooks - useState vs useEffect",
			Description: "What is the difference between useState and useEffect? When should I use each one?",
			Subject:     models.SubjectProgramming,
			Difficulty:  difficultyPtr(intermediate),
			Tags:        []string{"react", "hooks", "javascript"},
			AuthorID:    "user-2",
			Attachments: []models.Attachment{},
			Upvotes:     128,
			AnswerCount: 5,
			CreatedAt:   seedDate(2024, 1, 14, 0, 0),
			IsSolved:    true,
		},
		{
			ID:          "3",
			Title:       "Newton's Third Law - Action and Reaction",
			Description: "Can someone explain why objects don't move when forces are equal and opposite?",
			Subject:     models.SubjectPhysics,
			Difficulty:  difficultyPtr(beginner),
			Tags:        []string{"mechanics", "laws of motion"},
			AuthorID:    "user-1",
			Attachments: []models.Attachment{},
			Upvotes:     67,
			AnswerCount: 2,
			CreatedAt:   seedDate(2024, 1, 13, 0, 0),
			IsSolved:    true,
		},
		{
			ID:          "4",
			Title:       "How to balance chemical equations efficiently?",
			Description: "I struggle with balancing complex chemical equations. Any tips or strategies?",
			Subject:     models.SubjectChemistry,
			Difficulty:  difficultyPtr(intermediate),
			Tags:        []string{"stoichiometry", "equations"},
			AuthorID:    "user-3",
			Attachments: []models.Attachment{},
			Upvotes:     89,
			AnswerCount: 4,
			CreatedAt:   seedDate(2024, 1, 12, 0, 0),
			IsSolved:    true,
		},
		{
			ID:          "5",
			Title:       "Writing compelling thesis statements",
			Description: "How do I create a strong thesis statement for an argumentative essay?",
			Subject:     models.SubjectWriting,
			Difficulty:  difficultyPtr(intermediate),
			Tags:        []string{"essay", "thesis", "academic writing"},
			AuthorID:    "user-2",
			Attachments: []models.Attachment{},
			Upvotes:     54,
			AnswerCount: 3,
			CreatedAt:   seedDate(2024, 1, 11, 0, 0),
			IsSolved:    true,
		},
	}
}

func seedAnswers() []models.Answer {
	return []models.Answer{
		{
			ID:         "a1",
			QuestionID: "1",
			Content:    "The quadratic formula is x = (-b ± √(b²-4ac)) / 2a. Let me break this down step by step.",
			Steps: []string{
				"Identify coefficients a, b, and c from your equation ax² + bx + c = 0",
				"Calculate the discriminant: b² - 4ac",
				"Substitute values into the formula",
				"Simplify to get your two solutions",
			},
			AuthorID:   "ai-tutor",
			AuthorName: "Math AI",
			AuthorType: models.AuthorAITutor,
			Upvotes:    35,
			CreatedAt:  seedDate(2024, 1, 15, 10, 30),
		},
		{
			ID:         "a2",
			QuestionID: "2",
			Content:    "useState is for managing component state, while useEffect handles side effects.",
			Steps: []string{
				"useState: Creates a state variable that triggers re-renders when changed",
				"useEffect: Runs code after render, like fetching data or subscribing to events",
				"useState example: const [count, setCount] = useState(0)",
				"useEffect example: useEffect(() => { fetchData(); }, [dependency])",
			},
			AuthorID:   "ai-tutor",
			AuthorName: "Code Helper",
			AuthorType: models.AuthorAITutor,
			Upvotes:    92,
			CreatedAt:  seedDate(2024, 1, 14, 14, 20),
		},
		{
			ID:         "a3",
			QuestionID: "3",
			Content:    "The forces act on DIFFERENT objects, not the same object.",
			Steps: []string{
				"When you push a wall, you exert force on the wall",
				"The wall exerts equal and opposite force on you",
				"These forces cancel out only if they act on the same object",
				"Since they act on different objects, each object responds to its own net force",
			},
			AuthorID:   "peer-1",
			AuthorName: "Physics Student",
			AuthorType: models.AuthorPeerHelper,
			Upvotes:    48,
			CreatedAt:  seedDate(2024, 1, 13, 9, 15),
		},
	}
}

func seedUsers() []models.User {
	return []models.User{
		{ID: DefaultCurrentUserID, Username: "Alex Johnson", Badges: []string{"Top Helper", "AI Contributor"}},
		{ID: "user-1", Username: "Sarah Miller", Badges: []string{"Active Learner"}},
		{ID: "user-2", Username: "Mike Chen", Badges: []string{"Top Helper"}},
		{ID: "user-3", Username: "Emma Davis", Badges: []string{}},
	}
}

func seedDate(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func difficultyPtr(d models.Difficulty) *models.Difficulty {
	return &d
}
