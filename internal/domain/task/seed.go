package task

// seedStep spaces the example tasks' creation times.
const seedStep = 100_000

// SeedTasks returns the example tasks used to populate a store that has never
// been saved before. now is the current time in Unix milliseconds.
func SeedTasks(now int64) []Task {
	return []Task{
		{
			ID:          "1",
			Title:       "Set up project",
			Description: "Initialize the project and install dependencies.",
			Completed:   true,
			Priority:    PriorityHigh,
			CreatedAt:   now - 2*seedStep,
		},
		{
			ID:          "2",
			Title:       "Create UI components",
			Description: "Build the components that render tasks.",
			Completed:   true,
			Priority:    PriorityHigh,
			CreatedAt:   now - seedStep,
		},
		{
			ID:          "3",
			Title:       "Integrate AI suggestions",
			Description: "Call the suggestion service to propose similar tasks.",
			Priority:    PriorityMedium,
			CreatedAt:   now,
		},
		{
			ID:        "4",
			Title:     "Deploy to Firebase",
			Priority:  PriorityLow,
			CreatedAt: now + seedStep,
		},
	}
}
