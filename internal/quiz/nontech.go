package quiz

var nonTechTrack = Track{
	Background: BackgroundNonTech,
	Screens: []Screen{
		{
			ID:              "who-you-are",
			InitialChatText: "Welcome! Let me understand your background so I can create a personalized roadmap for your tech transition.",
			Questions: []Question{
				{
					ID:   "currentBackground",
					Text: "What's your current professional background?",
					Options: []Option{
						{Value: "sales-marketing", Label: "Sales / Marketing / Business"},
						{Value: "operations", Label: "Operations / Consulting / PM"},
						{Value: "design", Label: "Design (UI/UX / Graphic / Product)"},
						{Value: "finance", Label: "Finance / Accounting / Banking"},
						{Value: "other", Label: "Other Non-Tech / Fresh Grad"},
					},
				},
				{
					ID:   "experience",
					Text: "How many years of work experience do you have?",
					Options: []Option{
						{Value: "0", Label: "0 years (Fresh grad)"},
						{Value: "0-2", Label: "0-2 years"},
						{Value: "2-3", Label: "2-3 years"},
						{Value: "3-5", Label: "3-5 years"},
						{Value: "5+", Label: "5+ years"},
					},
				},
				{
					ID:         "stepsTaken",
					Text:       "What steps have you taken toward a tech career so far?",
					HelperText: "No worries if you're just getting started!",
					Options: []Option{
						{Value: "completed-course", Label: "Completed online courses"},
						{Value: "self-learning", Label: "Self-learning (YouTube/blogs)"},
						{Value: "built-projects", Label: "Built 1-2 small projects"},
						{Value: "just-exploring", Label: "Just exploring, haven't started"},
						{Value: "bootcamp", Label: "Attended bootcamp/workshop"},
					},
				},
			},
			ChatResponses: map[string]map[string]string{
				"currentBackground": {
					"sales-marketing": "Great! Your communication skills are huge advantages in tech. You'll stand out where many engineers struggle.",
					"operations":      "Perfect! Operations teaches systematic problem-solving - incredibly valuable for engineering roles.",
					"design":          "Awesome! Design thinking and user empathy are gold in tech. Frontend/product engineering are natural fits.",
					"finance":         "Nice! Analytical thinking and attention to detail transfer perfectly to programming and systems work.",
					"other":           "Welcome! Your unique background will be an advantage. Different perspectives lead to better products.",
				},
				"experience": {
					"0":   "Fresh start! Perfect time to build from the ground up with maximum flexibility in your learning path.",
					"0-2": "Good timing! Your adaptability will help you learn fast while understanding workplace dynamics.",
					"3-5": "Great! Your work experience is a strong foundation. Companies see career switchers as mature hires.",
					"5+":  "Impressive! Your maturity and domain knowledge are massive assets that accelerate your transition.",
				},
				"stepsTaken": {
					"completed-course": "Solid foundation! Now let's focus on building projects and getting interview-ready.",
					"self-learning":    "Love the hustle! Let's structure your learning and fill any gaps for interviews.",
					"built-projects":   "Excellent! You're ahead of most beginners. Let's polish and position these projects.",
					"just-exploring":   "Perfect place to start! With the right roadmap, people go from zero to job-ready in 6-12 months.",
					"bootcamp":         "Great investment! Let's build on that momentum with portfolio and interview preparation.",
				},
			},
		},
		{
			ID:              "where-you-want-to-go",
			InitialChatText: "Great! Now let's define your goals - your target role, motivation, and company preferences.",
			Questions: []Question{
				{
					ID:   "targetRole",
					Text: "Which tech role excites you the most?",
					Options: []Option{
						{Value: "backend", Label: "Backend Engineer"},
						{Value: "fullstack", Label: "Full-Stack Engineer"},
						{Value: "data-ml", Label: "Data / ML Engineer"},
						{Value: "frontend", Label: "Frontend Engineer"},
						{Value: "not-sure", Label: "Not sure yet / Exploring"},
					},
				},
				{
					ID:   "motivation",
					Text: "What is driving your move to tech?",
					Options: []Option{
						{Value: "salary", Label: "Better salary & growth"},
						{Value: "interest", Label: "Interest in technology"},
						{Value: "stability", Label: "Job stability & future-proofing"},
						{Value: "flexibility", Label: "Flexibility (remote work)"},
						{Value: "dissatisfied", Label: "Dissatisfied with current career"},
					},
				},
				{
					ID:   "targetCompany",
					Text: "What type of company would you love to work for?",
					Options: []Option{
						{Value: "any-tech", Label: "Any tech company (experience first)"},
						{Value: "product", Label: "Product companies"},
						{Value: "service", Label: "Service companies"},
						{Value: "faang-longterm", Label: "FAANG / Big Tech (long-term)"},
						{Value: "not-sure", Label: "Not sure / Need guidance"},
					},
				},
			},
			ChatResponses: map[string]map[string]string{
				"targetRole": {
					"backend":   "Great choice! Backend is always in demand with clear learning paths and strong salaries.",
					"fullstack": "Versatile! You'll learn end-to-end development with more job opportunities.",
					"data-ml":   "Future-proof! Growing fast but can be harder to break into as first role without math background.",
					"frontend":  "Creative path! Perfect if you enjoy visual feedback and UX. Tons of jobs for career switchers.",
					"not-sure":  "That's fine! I'll help you pick based on your background and learning style.",
				},
				"motivation": {
					"salary":       "Smart! Tech pays 2-3x most industries. Just make sure to find some genuine interest too for the journey.",
					"interest":     "Best reason! Genuine interest makes learning easier and is what separates success from burnout.",
					"stability":    "Wise choice! Tech is recession-resistant with transferable skills - ultimate job security.",
					"flexibility":  "Great perk! Remote work is common and companies compete on work-life balance.",
					"dissatisfied": "Time for change! Just make sure you're running toward tech, not just away from current job.",
				},
				"targetCompany": {
					"any-tech":       "Pragmatic! For first role, experience >> brand. Get your foot in, learn, then level up.",
					"product":        "Good goal! Great for learning but competitive. Consider service company as stepping stone.",
					"service":        "Smart! Service companies hire more beginners. Spend 1-2 years, then jump to product companies.",
					"faang-longterm": "Dream big! But FAANG as first job is very hard. Better path: any tech → better company → FAANG.",
					"not-sure":       "No problem! Focus on ANY engineering role first. After 1-2 years, you'll have more options.",
				},
			},
		},
		{
			ID:              "your-readiness",
			InitialChatText: "Almost done! Let's assess where you are today to give you a realistic timeline and focus areas.",
			Questions: []Question{
				{
					ID:         "codeComfort",
					Text:       "How comfortable are you with coding right now?",
					HelperText: "Be honest - this helps me give you the right advice!",
					Options: []Option{
						{Value: "confident", Label: "Confident (solve simple problems independently)"},
						{Value: "learning", Label: "Learning (follow tutorials, struggle alone)"},
						{Value: "beginner", Label: "Beginner (understand concepts, can't code yet)"},
						{Value: "complete-beginner", Label: "Complete Beginner (haven't tried yet)"},
					},
				},
				{
					ID:         "timePerWeek",
					Text:       "How much time can you dedicate each week?",
					HelperText: "This helps me create a realistic timeline for you",
					Options: []Option{
						{Value: "10+", Label: "10+ hours/week"},
						{Value: "6-10", Label: "6-10 hours/week"},
						{Value: "3-5", Label: "3-5 hours/week"},
						{Value: "0-2", Label: "0-2 hours/week"},
					},
				},
			},
			ChatResponses: map[string]map[string]string{
				"codeComfort": {
					"confident":         "Awesome! You're past the hardest part. Focus on portfolio projects and interview prep. ~3-6 months to job-ready!",
					"learning":          "Good progress! Now move from tutorials to building projects independently. ~6-9 months to job-ready.",
					"beginner":          "Perfect! Understanding concepts is step one. Start writing code even if it's buggy. ~9-12 months to job-ready.",
					"complete-beginner": "No worries! Everyone starts here. Consistency over intensity. ~12-18 months to job-ready with discipline.",
				},
				"timePerWeek": {
					"10+":  "Wow! This commitment will get you there fast. 6-12 months to job-ready. Just pace yourself!",
					"6-10": "Great! Sustainable pace with steady progress. 9-15 months to job-ready. Stay consistent!",
					"3-5":  "Good! Minimum viable pace. Progress will be slower at 12-24 months. Can you carve out more time?",
					"0-2":  "Let's be honest - this isn't enough for meaningful progress. Consider starting when you can dedicate more time.",
				},
			},
		},
	},
}
