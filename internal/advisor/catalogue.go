package advisor

import "github.com/DhavalSuthar-24/acecourt/internal/models"

// The catalogue builders return fresh slices so callers may modify them.

func serveDrills() []models.Drill {
	return []models.Drill{
		{
			Name:        "Target Practice Serves",
			Description: "Improve serve accuracy by aiming at specific targets",
			Duration:    "15-20 mins",
			Difficulty:  "intermediate",
			Equipment:   []string{"tennis balls", "cones or targets"},
			Steps: []string{
				"Place targets in service boxes",
				"Start with slow, controlled serves",
				"Focus on consistent contact point",
				"Gradually increase power while maintaining accuracy",
				"Practice both first and second serves",
			},
		},
		{
			Name:        "Shadow Serving",
			Description: "Practice serve motion without a ball to perfect technique",
			Duration:    "10-15 mins",
			Difficulty:  "beginner",
			Equipment:   []string{"tennis racket"},
			Steps: []string{
				"Stand in serving position",
				"Practice the complete serving motion slowly",
				"Focus on smooth weight transfer",
				"Repeat the motion 20-30 times",
				"Gradually increase speed of motion",
			},
		},
	}
}

func footworkDrills() []models.Drill {
	return []models.Drill{
		{
			Name:        "Ladder Drills",
			Description: "Improve foot speed and coordination",
			Duration:    "10-15 mins",
			Difficulty:  "intermediate",
			Equipment:   []string{"agility ladder or cones"},
			Steps: []string{
				"Set up ladder or cones in a line",
				"Practice quick feet through the ladder",
				"Use different patterns: in-in-out-out",
				"Focus on staying on balls of feet",
				"Rest 30 seconds between sets",
			},
		},
		{
			Name:        "Split Step Practice",
			Description: "Master the fundamental ready position",
			Duration:    "8-12 mins",
			Difficulty:  "beginner",
			Equipment:   []string{"tennis court"},
			Steps: []string{
				"Start in ready position at baseline",
				"Practice small jump as opponent hits",
				"Land on balls of feet, knees bent",
				"Immediately move in desired direction",
				"Repeat 15-20 times",
			},
		},
	}
}

func forehandDrills() []models.Drill {
	return []models.Drill{
		{
			Name:        "Wall Rally Practice",
			Description: "Develop consistent forehand technique",
			Duration:    "15-20 mins",
			Difficulty:  "intermediate",
			Equipment:   []string{"tennis ball", "wall or backboard"},
			Steps: []string{
				"Stand 6-8 feet from wall",
				"Hit gentle forehand shots against wall",
				"Focus on smooth swing path",
				"Maintain consistent contact point",
				"Count consecutive hits",
			},
		},
		{
			Name:        "Forehand Cross-Court",
			Description: "Practice forehand accuracy and placement",
			Duration:    "12-18 mins",
			Difficulty:  "intermediate",
			Equipment:   []string{"tennis balls", "cones"},
			Steps: []string{
				"Set up targets in cross-court areas",
				"Hit forehands from baseline",
				"Focus on topspin and depth",
				"Aim for consistency over power",
				"Track successful target hits",
			},
		},
	}
}

func generalDrills() []models.Drill {
	return []models.Drill{
		{
			Name:        "Mini Tennis",
			Description: "Improve hand-eye coordination and control",
			Duration:    "10-15 mins",
			Difficulty:  "beginner",
			Equipment:   []string{"tennis balls", "short court or service boxes"},
			Steps: []string{
				"Play within service boxes only",
				"Use gentle, controlled shots",
				"Focus on consistent ball contact",
				"Rally back and forth",
				"Gradually increase pace",
			},
		},
		{
			Name:        "Cone Weaving",
			Description: "Enhance agility and court movement",
			Duration:    "8-12 mins",
			Difficulty:  "intermediate",
			Equipment:   []string{"cones", "tennis court"},
			Steps: []string{
				"Set up cones in zigzag pattern",
				"Weave through cones at varying speeds",
				"Stay low and balanced",
				"Use proper tennis movement patterns",
				"Time yourself for improvement",
			},
		},
		{
			Name:        "Ball Bounce Control",
			Description: "Develop racket control and touch",
			Duration:    "5-10 mins",
			Difficulty:  "beginner",
			Equipment:   []string{"tennis ball", "tennis racket"},
			Steps: []string{
				"Bounce ball on racket strings",
				"Keep ball low and controlled",
				"Alternate between forehand and backhand sides",
				"Try to reach 50 consecutive bounces",
				"Progress to walking while bouncing",
			},
		},
	}
}
