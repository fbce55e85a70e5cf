package content

import "github.com/mindhaven/mindhaven/internal/models"

// DefaultCatalog returns the built-in mental-wellness content tables:
// five topical categories with their keyword lists, mood-keyed replies,
// and curated song/game/activity bundles.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		Categories: []Category{
			anxietyCategory(),
			depressionCategory(),
			stressCategory(),
			sleepCategory(),
			lonelinessCategory(),
		},
		Markers: map[models.Mood][]string{
			models.MoodSad: {
				"🤗", "💝", "💫", "🌟", "✨", "💕", "💖", "💗", "💓", "💞",
			},
			models.MoodNeutral: {
				"🤔", "💭", "💫", "🌟", "✨", "💕", "💖", "💗", "💓", "💞",
			},
			models.MoodHappy: {
				"😊", "💝", "💫", "🌟", "✨", "💕", "💖", "💗", "💓", "💞",
			},
		},
		Encouragements: map[models.Mood][]string{
			models.MoodSad: {
				"🌟 You're stronger than you know! Taking the first step to talk about it is already a huge win!",
				"💪 Hey, you're doing great! Just by reaching out, you're showing incredible courage!",
				"✨ You're a warrior! Every small step forward is a victory worth celebrating!",
				"🎯 You've got this! Remember, even superheroes need a moment to recharge!",
				"🌈 Your strength is inspiring! You're making progress, even if it doesn't feel like it!",
			},
			models.MoodNeutral: {
				"🚀 You're on the right track! Keep that momentum going!",
				"🎨 Your journey is unique and beautiful, just like you!",
				"💫 You're making great progress! Every day is a new opportunity!",
				"🌟 You're doing better than you think! Keep shining!",
				"🎯 You're capable of amazing things! Believe in yourself!",
			},
			models.MoodHappy: {
				"🎉 Your positive energy is contagious! Keep spreading those good vibes!",
				"✨ You're absolutely crushing it! Your progress is inspiring!",
				"🌟 You're a ray of sunshine! Your attitude is making a difference!",
				"🎨 You're creating your own beautiful story! Keep writing it!",
				"💫 You're making the world a better place just by being you!",
			},
		},
		GenericReplies: map[models.Mood][]string{
			models.MoodHappy: {
				"I'm glad you're feeling good! 😊 Keep spreading positivity!",
				"That's wonderful to hear! What's contributing to your positive mood?",
				"Your positive energy is contagious! Keep it up! 🌟",
			},
			models.MoodSad: {
				"I'm here for you. 💙 Would you like to talk about what's bothering you?",
				"It's okay to feel sad. Would you like to share more about your feelings?",
				"I'm listening. What's on your mind?",
			},
			models.MoodNeutral: {
				"I see. Would you like to share more about your day?",
				"How are you feeling about things in general?",
				"Is there anything specific you'd like to talk about?",
			},
		},
	}
	c.index()
	return c
}

func anxietyCategory() Category {
	return Category{
		ID: "anxiety",
		Keywords: []string{
			"anxiety", "panic", "worry", "stress", "nervous", "fear", "anxious", "panic attack",
			"panicking", "worried", "stressed", "afraid", "scared", "anxiousness", "overwhelmed",
			"racing thoughts", "heart racing", "sweating", "trembling", "restless", "on edge",
			"can't relax", "constant worry", "fearful", "apprehensive", "tense", "jittery",
		},
		Replies: map[models.Mood][]string{
			models.MoodSad: {
				"I understand anxiety can be really challenging. Let's try a quick grounding exercise: Take 3 deep breaths, counting to 4 as you inhale and 4 as you exhale. Would you like to try this together?",
				"It's okay to feel anxious. I'm here to listen. Could you tell me more about what's triggering these feelings? Sometimes talking about it can help us understand it better.",
				"Remember that anxiety is a natural response, but we can work on managing it together. Would you like to learn about some practical techniques that might help?",
			},
			models.MoodNeutral: {
				"I notice you're mentioning anxiety. Would you like to explore some practical coping strategies? I can share some techniques that many people find helpful.",
				"Anxiety can affect us in different ways. How has it been impacting your daily life? This can help me suggest more relevant coping strategies.",
			},
			models.MoodHappy: {
				"I'm glad you're feeling good while discussing this! Would you like to share what's been helping you manage anxiety? Your experience could help others too.",
				"That's great that you're open about your anxiety! What strategies have worked well for you? Sharing your journey can be inspiring for others.",
			},
		},
		Recommendations: map[models.Mood]RecommendationSet{
			models.MoodSad: {
				Songs: []Song{
					{Title: "Weightless", Artist: "Marconi Union", Reason: "This song is scientifically proven to reduce anxiety"},
					{Title: "Don't Worry Be Happy", Artist: "Bobby McFerrin", Reason: "A gentle reminder to stay positive"},
					{Title: "Three Little Birds", Artist: "Bob Marley", Reason: "Uplifting reggae to ease your mind"},
				},
				Games: []Game{
					{Name: "Tetris", Reason: "Focusing on patterns can help reduce anxiety"},
					{Name: "Stardew Valley", Reason: "Peaceful farming game to distract from worries"},
				},
				Activities: []string{
					"Try the 5-4-3-2-1 grounding technique: Name 5 things you can see, 4 things you can touch, 3 things you can hear, 2 things you can smell, and 1 thing you can taste",
					"Practice deep breathing: Inhale for 4 counts, hold for 4, exhale for 4",
					"Take a short walk outside and focus on your surroundings",
					"Try progressive muscle relaxation: Tense and relax each muscle group",
				},
			},
			models.MoodNeutral: {
				Songs: []Song{
					{Title: "Breathe", Artist: "Télépopmusik", Reason: "Calming electronic beats to help you relax"},
					{Title: "Somewhere Over the Rainbow", Artist: "Israel Kamakawiwo'ole", Reason: "Soothing ukulele version to calm your nerves"},
				},
				Games: []Game{
					{Name: "Animal Crossing", Reason: "Calm, social game to help you relax"},
					{Name: "Journey", Reason: "Beautiful, meditative game to ease your mind"},
				},
				Activities: []string{
					"Practice mindfulness meditation for 5 minutes",
					"Try a gentle stretching routine",
					"Write down your thoughts in a journal",
					"Listen to nature sounds or white noise",
				},
			},
			models.MoodHappy: {
				Songs: []Song{
					{Title: "Good Vibrations", Artist: "Beach Boys", Reason: "Upbeat tune to maintain positive energy"},
					{Title: "Walking on Sunshine", Artist: "Katrina & The Waves", Reason: "Energetic song to boost your mood"},
				},
				Games: []Game{
					{Name: "Mario Kart", Reason: "Fun racing game to maintain good spirits"},
					{Name: "Just Dance", Reason: "Active game to keep your energy up"},
				},
				Activities: []string{
					"Share your positive coping strategies with others",
					"Create a playlist of uplifting songs",
					"Practice gratitude by listing 3 things you're thankful for",
					"Try a new hobby or creative activity",
				},
			},
		},
	}
}

func depressionCategory() Category {
	return Category{
		ID: "depression",
		Keywords: []string{
			"depression", "sad", "hopeless", "worthless", "suicide", "empty", "depressed", "down",
			"miserable", "despair", "despairing", "suicidal", "unhappy", "melancholy", "gloomy",
			"low mood", "no energy", "tired", "exhausted", "no motivation", "can't get up",
			"no interest", "lost interest", "feel nothing", "numb", "crying", "tearful",
			"self-harm", "self harm", "want to die", "life not worth", "no purpose",
		},
		Replies: map[models.Mood][]string{
			models.MoodSad: {
				"I hear you, and it's important to know that you're not alone. Have you considered talking to a mental health professional? They can provide specialized support and guidance.",
				"Depression can be really difficult to deal with. Would you like to share more about what you're experiencing? Sometimes talking about it can help us understand our feelings better.",
				"Your feelings are valid. Let's talk about what might help you feel better. Have you tried any activities that usually bring you joy?",
			},
			models.MoodNeutral: {
				"I notice you're mentioning depression. Would you like to talk about how you're feeling? Understanding your experience better can help me provide more relevant support.",
				"Depression can affect people in different ways. How has it been affecting your daily life? This can help me suggest more appropriate coping strategies.",
			},
			models.MoodHappy: {
				"I'm glad you're feeling better! Would you like to share what's been helping you? Your experience could be valuable for others going through similar challenges.",
				"That's wonderful that you're feeling good! What strategies have been working for you? Sharing your success can help others find their own path to recovery.",
			},
		},
		Recommendations: map[models.Mood]RecommendationSet{
			models.MoodSad: {
				Songs: []Song{
					{Title: "Fix You", Artist: "Coldplay", Reason: "Emotional support through music"},
					{Title: "The Sound of Silence", Artist: "Simon & Garfunkel", Reason: "Reflective song to process feelings"},
				},
				Games: []Game{
					{Name: "Gris", Reason: "Beautiful, emotional journey about healing"},
					{Name: "Flower", Reason: "Peaceful game about finding beauty in life"},
				},
				Activities: []string{
					"Take a short walk in nature",
					"Write down one small goal for today",
					"Try a simple art or craft activity",
					"Practice self-compassion by writing kind words to yourself",
				},
			},
			models.MoodNeutral: {
				Songs: []Song{
					{Title: "Here Comes the Sun", Artist: "The Beatles", Reason: "Hopeful melody to lift spirits"},
					{Title: "Lean on Me", Artist: "Bill Withers", Reason: "Reminder that you're not alone"},
				},
				Games: []Game{
					{Name: "Minecraft", Reason: "Creative outlet to express yourself"},
					{Name: "The Sims", Reason: "Life simulation to regain control"},
				},
				Activities: []string{
					"Create a daily routine and stick to it",
					"Try a new recipe or cooking activity",
					"Start a gratitude journal",
					"Practice gentle exercise like yoga or stretching",
				},
			},
			models.MoodHappy: {
				Songs: []Song{
					{Title: "Happy", Artist: "Pharrell Williams", Reason: "Upbeat anthem to maintain positivity"},
					{Title: "Don't Stop Believin'", Artist: "Journey", Reason: "Inspiring song to keep going"},
				},
				Games: []Game{
					{Name: "Portal", Reason: "Puzzle game to challenge your mind"},
					{Name: "Overcooked", Reason: "Fun cooperative game to connect with others"},
				},
				Activities: []string{
					"Share your progress with a friend or family member",
					"Plan a small celebration for your achievements",
					"Try a new hobby or skill",
					"Create a vision board of your goals",
				},
			},
		},
	}
}

func stressCategory() Category {
	return Category{
		ID: "stress",
		Keywords: []string{
			"stress", "pressure", "overwhelmed", "exhausted", "tired", "burnout", "stressed",
			"stressful", "pressured", "burden", "overworked", "exhaustion",
			"too much", "can't handle", "breaking point", "at my limit", "no time",
			"deadline", "workload", "responsibilities", "too many things", "no rest",
			"always busy", "no break", "constant pressure", "under pressure",
		},
		Replies: map[models.Mood][]string{
			models.MoodSad: {
				"Stress can be really overwhelming. Let's try a quick stress management technique: Take a moment to tense and then relax each muscle group, starting from your toes. Would you like to try this together?",
				"It's important to take care of yourself. Would you like to talk about what's causing your stress? Sometimes identifying the source can help us find solutions.",
				"Remember to take breaks and practice self-care. What activities usually help you relax? We can explore some new relaxation techniques together.",
			},
			models.MoodNeutral: {
				"I notice you're mentioning stress. Would you like to learn about some effective stress management techniques? I can share some practical strategies that might help.",
				"Stress affects everyone differently. How has it been impacting your daily life? This can help me suggest more relevant coping strategies.",
			},
			models.MoodHappy: {
				"I'm glad you're feeling good while managing stress! What's been working for you? Your experience could help others dealing with stress.",
				"That's great that you're handling stress well! Would you like to share your strategies? Your approach might be helpful for others.",
			},
		},
		Recommendations: map[models.Mood]RecommendationSet{
			models.MoodSad: {
				Songs: []Song{
					{Title: "Weightless", Artist: "Marconi Union", Reason: "Stress-reducing ambient music"},
					{Title: "River Flows in You", Artist: "Yiruma", Reason: "Calming piano piece"},
				},
				Games: []Game{
					{Name: "Zen Bound", Reason: "Meditative puzzle game to unwind"},
					{Name: "Prune", Reason: "Minimalist game about growth and letting go"},
				},
				Activities: []string{
					"Try a 5-minute meditation break",
					"Practice progressive muscle relaxation",
					"Take a short walk or stretch break",
					"Write down your stressors and possible solutions",
				},
			},
			models.MoodNeutral: {
				Songs: []Song{
					{Title: "Peaceful Easy Feeling", Artist: "Eagles", Reason: "Relaxing country rock"},
					{Title: "Morning Meditation", Artist: "Dan Gibson", Reason: "Nature sounds to reduce stress"},
				},
				Games: []Game{
					{Name: "Monument Valley", Reason: "Peaceful puzzle game to distract from stress"},
					{Name: "Alto's Adventure", Reason: "Calming endless runner with beautiful visuals"},
				},
				Activities: []string{
					"Create a stress management plan",
					"Practice time management techniques",
					"Try a new relaxation method",
					"Organize your workspace or living area",
				},
			},
			models.MoodHappy: {
				Songs: []Song{
					{Title: "Good Day Sunshine", Artist: "The Beatles", Reason: "Cheerful tune to brighten your day"},
					{Title: "Walking on Sunshine", Artist: "Katrina & The Waves", Reason: "Energetic song to relieve stress"},
				},
				Games: []Game{
					{Name: "Garden Paws", Reason: "Cute farming game to relax"},
					{Name: "Slime Rancher", Reason: "Colorful, stress-free game about collecting slimes"},
				},
				Activities: []string{
					"Share your stress management tips with others",
					"Create a self-care routine",
					"Plan a small reward for yourself",
					"Try a new hobby or creative outlet",
				},
			},
		},
	}
}

func sleepCategory() Category {
	return Category{
		ID: "sleep",
		Keywords: []string{
			"sleep", "insomnia", "tired", "exhausted", "restless", "sleepless", "sleepy",
			"fatigue", "fatigued", "bed", "nap", "drowsy", "rest", "resting", "can't sleep",
			"wake up", "waking up", "nightmares", "bad dreams", "sleep problems",
			"sleep issues", "trouble sleeping", "sleep deprivation", "sleep deprived",
			"no sleep", "lack of sleep", "poor sleep", "sleep quality", "sleep schedule",
		},
		Replies: map[models.Mood][]string{
			models.MoodSad: {
				"Sleep issues can be really frustrating. Let's try a simple sleep hygiene tip: Create a relaxing bedtime routine, like reading a book or taking a warm bath. Would you like to learn more about sleep hygiene practices?",
				"Poor sleep can affect your mental health. Would you like to discuss what might be keeping you up? Together, we can explore some solutions.",
				"Creating a peaceful sleep environment can help. Have you tried any relaxation techniques before bed? I can suggest some that might work for you.",
			},
			models.MoodNeutral: {
				"I notice you're mentioning sleep issues. Would you like to learn about some sleep hygiene tips? I can share some practical strategies that might help.",
				"Sleep problems can affect us in different ways. How has it been impacting your daily life? This can help me suggest more relevant solutions.",
			},
			models.MoodHappy: {
				"I'm glad you're feeling good about your sleep! What's been helping you? Your experience could help others improve their sleep quality.",
				"That's great that you're sleeping better! Would you like to share your tips? Your success could inspire others to improve their sleep habits.",
			},
		},
		Recommendations: map[models.Mood]RecommendationSet{
			models.MoodSad: {
				Songs: []Song{
					{Title: "Weightless", Artist: "Marconi Union", Reason: "Sleep-inducing ambient music"},
					{Title: "Clair de Lune", Artist: "Claude Debussy", Reason: "Peaceful classical piece"},
				},
				Games: []Game{
					{Name: "Sleep Cycle", Reason: "Track and improve your sleep quality"},
					{Name: "Calm", Reason: "Meditation and sleep stories app"},
				},
				Activities: []string{
					"Create a relaxing bedtime routine",
					"Try a gentle stretching exercise before bed",
					"Practice deep breathing for 5 minutes",
					"Write down your thoughts to clear your mind",
				},
			},
			models.MoodNeutral: {
				Songs: []Song{
					{Title: "Nocturne in E-flat major", Artist: "Frédéric Chopin", Reason: "Gentle piano piece for sleep"},
					{Title: "Sleep", Artist: "Eric Whitacre", Reason: "Soothing choral music"},
				},
				Games: []Game{
					{Name: "Sleep Town", Reason: "Build a town by maintaining good sleep habits"},
					{Name: "Forest", Reason: "Stay focused and plant real trees while you sleep"},
				},
				Activities: []string{
					"Establish a consistent sleep schedule",
					"Create a sleep-friendly environment",
					"Try a sleep meditation",
					"Practice relaxation techniques before bed",
				},
			},
			models.MoodHappy: {
				Songs: []Song{
					{Title: "Lullaby", Artist: "Brahms", Reason: "Classic calming melody"},
					{Title: "Goodnight Sweetheart", Artist: "The Spaniels", Reason: "Gentle doo-wop for peaceful sleep"},
				},
				Games: []Game{
					{Name: "Pokemon Sleep", Reason: "Track sleep while collecting Pokemon"},
					{Name: "Sleep Cycle", Reason: "Wake up feeling refreshed with smart alarm"},
				},
				Activities: []string{
					"Share your sleep success tips with others",
					"Create a relaxing evening routine",
					"Practice gratitude before bed",
					"Try a new relaxation technique",
				},
			},
		},
	}
}

func lonelinessCategory() Category {
	return Category{
		ID: "loneliness",
		Keywords: []string{
			"lonely", "alone", "isolated", "friend", "social", "loneliness", "solitude",
			"isolation", "abandoned", "friendship", "company", "connection", "disconnected",
			"no friends", "no one to talk to", "no support", "feel alone", "by myself",
			"no one understands", "no one cares", "no social life", "no connections",
			"missing people", "miss company", "want friends", "need friends", "social anxiety",
			"afraid to socialize", "hard to make friends",
		},
		Replies: map[models.Mood][]string{
			models.MoodSad: {
				"Feeling lonely can be really hard. Have you considered joining any social groups or activities? There are many ways to connect with others who share your interests.",
				"Connection is important for mental health. Would you like to talk about ways to build more social connections? I can suggest some practical steps you could take.",
				"Remember that it's okay to reach out to others. Have you tried connecting with friends or family? Sometimes taking the first step can be the hardest.",
			},
			models.MoodNeutral: {
				"I notice you're mentioning loneliness. Would you like to discuss ways to build connections? I can suggest some practical steps you could take.",
				"Loneliness affects everyone differently. How has it been affecting your daily life? This can help me suggest more relevant ways to connect.",
			},
			models.MoodHappy: {
				"I'm glad you're feeling connected! What's been helping you build relationships? Your experience could help others who are feeling lonely.",
				"That's great that you're feeling good socially! Would you like to share your experiences? Your success could inspire others to build more connections.",
			},
		},
		Recommendations: map[models.Mood]RecommendationSet{
			models.MoodSad: {
				Songs: []Song{
					{Title: "Lean on Me", Artist: "Bill Withers", Reason: "Reminder that you're not alone"},
					{Title: "You've Got a Friend", Artist: "Carole King", Reason: "Comforting message about friendship"},
				},
				Games: []Game{
					{Name: "Among Us", Reason: "Social deduction game to connect with others"},
					{Name: "Minecraft", Reason: "Build and explore with others online"},
				},
				Activities: []string{
					"Join an online community or forum",
					"Try a virtual group activity or class",
					"Reach out to an old friend or family member",
					"Start a new hobby that can be done with others",
				},
			},
			models.MoodNeutral: {
				Songs: []Song{
					{Title: "Count on Me", Artist: "Bruno Mars", Reason: "Upbeat song about friendship"},
					{Title: "With a Little Help from My Friends", Artist: "The Beatles", Reason: "Classic about the importance of connection"},
				},
				Games: []Game{
					{Name: "Stardew Valley", Reason: "Farming game with social elements"},
					{Name: "Animal Crossing", Reason: "Virtual world to connect with others"},
				},
				Activities: []string{
					"Look for local community events or groups",
					"Try a new social activity or hobby",
					"Join a book club or discussion group",
					"Volunteer for a cause you care about",
				},
			},
			models.MoodHappy: {
				Songs: []Song{
					{Title: "Happy Together", Artist: "The Turtles", Reason: "Cheerful song about togetherness"},
					{Title: "You've Got a Friend in Me", Artist: "Randy Newman", Reason: "Disney classic about friendship"},
				},
				Games: []Game{
					{Name: "Overcooked", Reason: "Fun cooperative cooking game"},
					{Name: "Fall Guys", Reason: "Playful multiplayer game to meet new people"},
				},
				Activities: []string{
					"Share your social success tips with others",
					"Plan a small social gathering",
					"Try a new group activity",
					"Help others who might be feeling lonely",
				},
			},
		},
	}
}
