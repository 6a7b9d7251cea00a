// Package bank holds the static assessment catalog: the six questionnaire
// layers and the category-to-career lookup tables. Pure data, defined at
// build time.
package bank

import "careercompass/internal/model"

func q(id, text string, typ model.QuestionType, category string) model.Question {
	return model.Question{ID: id, Text: text, Type: typ, Category: category}
}

func likert(id, text, category string) model.Question {
	return q(id, text, model.QuestionTypeLikert, category)
}

func openEnded(id, text, category string) model.Question {
	return q(id, text, model.QuestionTypeOpenEnded, category)
}

var layers = []model.AssessmentLayer{
	{
		ID:          "layer1",
		Name:        "Multiple Intelligences",
		Description: "Discover your natural intelligence strengths and learning preferences",
		IsOpenEnded: false,
		CategoryOrder: []string{
			"Linguistic", "Logical-Mathematical", "Interpersonal",
			"Intrapersonal", "Visual-Spatial", "Naturalistic",
		},
		Categories: map[string][]model.Question{
			"Linguistic": {
				likert("l1-ling-1", "I enjoy writing essays, stories, or journal entries for fun.", "Linguistic"),
				likert("l1-ling-2", "I find it easy to explain complex topics in simple terms.", "Linguistic"),
				likert("l1-ling-3", "I actively participate in debates, discussions, or public speaking.", "Linguistic"),
				likert("l1-ling-4", "I enjoy reading and analyzing books, research papers, or blogs.", "Linguistic"),
				likert("l1-ling-5", "I like to express my ideas clearly through written or spoken communication.", "Linguistic"),
			},
			"Logical-Mathematical": {
				likert("l1-math-1", "I enjoy solving logical puzzles, riddles, or brain teasers.", "Logical-Mathematical"),
				likert("l1-math-2", "I analyze data, statistics, or numerical trends to make decisions.", "Logical-Mathematical"),
				likert("l1-math-3", "I like working on research projects that involve problem-solving.", "Logical-Mathematical"),
				likert("l1-math-4", "I enjoy subjects like math, coding, finance, or science.", "Logical-Mathematical"),
				likert("l1-math-5", "I easily identify patterns and relationships in data or concepts.", "Logical-Mathematical"),
			},
			"Interpersonal": {
				likert("l1-inter-1", "I enjoy working in teams and collaborating with peers on projects.", "Interpersonal"),
				likert("l1-inter-2", "I am good at resolving conflicts between friends or classmates.", "Interpersonal"),
				likert("l1-inter-3", "I often help others understand concepts by explaining them in different ways.", "Interpersonal"),
				likert("l1-inter-4", "I enjoy networking, meeting new people, and forming connections.", "Interpersonal"),
				likert("l1-inter-5", "I understand and respond well to people's emotions and perspectives.", "Interpersonal"),
			},
			"Intrapersonal": {
				likert("l1-intra-1", "I regularly reflect on my personal strengths and weaknesses.", "Intrapersonal"),
				likert("l1-intra-2", "I set clear personal and academic goals for myself.", "Intrapersonal"),
				likert("l1-intra-3", "I stay motivated and disciplined even when studying independently.", "Intrapersonal"),
				likert("l1-intra-4", "I understand my emotions and how they affect my decision-making.", "Intrapersonal"),
				likert("l1-intra-5", "I choose career paths based on my interests, values, and long-term aspirations.", "Intrapersonal"),
			},
			"Visual-Spatial": {
				likert("l1-spatial-1", "I enjoy drawing, painting, or visual designing.", "Visual-Spatial"),
				likert("l1-spatial-2", "I can visualize objects from different angles in my mind.", "Visual-Spatial"),
				likert("l1-spatial-3", "I prefer visual aids like diagrams, charts, or videos.", "Visual-Spatial"),
				likert("l1-spatial-4", "I am good at navigating or reading maps.", "Visual-Spatial"),
				likert("l1-spatial-5", "I often think in pictures rather than words.", "Visual-Spatial"),
			},
			"Naturalistic": {
				likert("l1-nature-1", "I enjoy studying environmental topics like sustainability, ecology, or agriculture.", "Naturalistic"),
				likert("l1-nature-2", "I like spending time in nature and observing patterns in the environment.", "Naturalistic"),
				likert("l1-nature-3", "I notice and appreciate details in my surroundings that others often overlook.", "Naturalistic"),
				likert("l1-nature-4", "I advocate for environmental and sustainability initiatives in my college.", "Naturalistic"),
				likert("l1-nature-5", "I connect academic subjects with real-world applications in nature and science.", "Naturalistic"),
			},
		},
	},
	{
		ID:          "layer2",
		Name:        "Personality Traits",
		Description: "Understand your personality dimensions and work style preferences",
		IsOpenEnded: false,
		CategoryOrder: []string{
			"MBTI", "Big Five - Openness", "Big Five - Conscientiousness",
			"Big Five - Extraversion",
		},
		Categories: map[string][]model.Question{
			"MBTI": {
				likert("l2-mbti-1", "I get energized by spending time alone (I) vs with others (E).", "MBTI"),
				likert("l2-mbti-2", "I prefer focusing on facts (S) vs big picture ideas (N).", "MBTI"),
				likert("l2-mbti-3", "I prioritize logic and consistency (T) vs empathy and values (F).", "MBTI"),
				likert("l2-mbti-4", "I prefer planned and organized (J) vs flexible and spontaneous (P).", "MBTI"),
			},
			"Big Five - Openness": {
				likert("l2-open-1", "I enjoy trying new and different activities.", "Big Five - Openness"),
				likert("l2-open-2", "I am imaginative and full of ideas.", "Big Five - Openness"),
				likert("l2-open-3", "I appreciate art, music, and literature.", "Big Five - Openness"),
			},
			"Big Five - Conscientiousness": {
				likert("l2-cons-1", "I like to keep things organized and tidy.", "Big Five - Conscientiousness"),
				likert("l2-cons-2", "I follow through with tasks and responsibilities.", "Big Five - Conscientiousness"),
			},
			"Big Five - Extraversion": {
				likert("l2-extra-1", "I feel comfortable in social situations.", "Big Five - Extraversion"),
				likert("l2-extra-2", "I enjoy being the center of attention.", "Big Five - Extraversion"),
			},
		},
	},
	{
		ID:            "layer3",
		Name:          "Aptitudes & Skills",
		Description:   "Assess your natural abilities and developed competencies",
		IsOpenEnded:   false,
		CategoryOrder: []string{"Numerical Aptitude", "Verbal Aptitude", "Technical Skills"},
		Categories: map[string][]model.Question{
			"Numerical Aptitude": {
				likert("l3-num-1", "I am comfortable working with numbers and data.", "Numerical Aptitude"),
				likert("l3-num-2", "I can solve arithmetic and algebraic problems easily.", "Numerical Aptitude"),
				likert("l3-num-3", "I enjoy tasks involving statistics, accounting, or finance.", "Numerical Aptitude"),
			},
			"Verbal Aptitude": {
				likert("l3-verb-1", "I understand and use new vocabulary quickly.", "Verbal Aptitude"),
				likert("l3-verb-2", "I can comprehend and analyze written passages.", "Verbal Aptitude"),
				likert("l3-verb-3", "I enjoy word-based games and language puzzles.", "Verbal Aptitude"),
			},
			"Technical Skills": {
				likert("l3-tech-1", "I have experience with software/tools relevant to my field.", "Technical Skills"),
				likert("l3-tech-2", "I can troubleshoot or learn new technical skills quickly.", "Technical Skills"),
				likert("l3-tech-3", "I understand technical manuals, processes, or systems.", "Technical Skills"),
			},
		},
	},
	{
		ID:            "layer4",
		Name:          "Background & Environment",
		Description:   "Evaluate how your background and environment influence career opportunities",
		IsOpenEnded:   false,
		CategoryOrder: []string{"Educational Background", "Career Exposure"},
		Categories: map[string][]model.Question{
			"Educational Background": {
				likert("l4-edu-1", "I have access to quality academic resources (books, teachers, labs).", "Educational Background"),
				likert("l4-edu-2", "I attend or have attended a school/college with strong academic performance.", "Educational Background"),
				likert("l4-edu-3", "My academic environment encourages exploration and innovation.", "Educational Background"),
			},
			"Career Exposure": {
				likert("l4-career-1", "I've interacted with professionals from various career paths.", "Career Exposure"),
				likert("l4-career-2", "I have participated in internships, shadowing, or volunteering roles.", "Career Exposure"),
				likert("l4-career-3", "My school/college offers good career counseling services.", "Career Exposure"),
			},
		},
	},
	{
		ID:            "layer5",
		Name:          "Interests & Values",
		Description:   "Explore your passions, interests, and core values",
		IsOpenEnded:   false,
		CategoryOrder: []string{"Interests and Passions", "Personal Goals and Values"},
		Categories: map[string][]model.Question{
			"Interests and Passions": {
				likert("l5-interest-1", "I have clear hobbies or subjects that I love spending time on.", "Interests and Passions"),
				likert("l5-interest-2", "I often find myself researching or learning about certain topics outside class.", "Interests and Passions"),
				likert("l5-interest-3", "I get excited about working on personal or creative projects.", "Interests and Passions"),
			},
			"Personal Goals and Values": {
				likert("l5-goals-1", "I have written down or thought deeply about my career goals.", "Personal Goals and Values"),
				likert("l5-goals-2", "My career decisions are guided by my personal values.", "Personal Goals and Values"),
				likert("l5-goals-3", "I consider work-life balance and personal fulfillment when imagining my future job.", "Personal Goals and Values"),
			},
		},
	},
	{
		ID:            "layer6",
		Name:          "Self-Reflection & Synthesis",
		Description:   "Synthesize your insights and create an actionable career plan",
		IsOpenEnded:   true,
		CategoryOrder: []string{"Self_Synthesis", "Action_Plan"},
		Categories: map[string][]model.Question{
			"Self_Synthesis": {
				openEnded("l6-synth-1", "Based on my intelligence strengths, the types of activities I naturally enjoy are:", "Self_Synthesis"),
				openEnded("l6-synth-2", "Based on my personality, I thrive in environments that are:", "Self_Synthesis"),
				openEnded("l6-synth-3", "The industries and roles that excite me most are:", "Self_Synthesis"),
				openEnded("l6-synth-4", "My top 3 career interest areas are:", "Self_Synthesis"),
			},
			"Action_Plan": {
				openEnded("l6-action-1", "What are 3 things you can do in the next 30 days to explore your top choice(s)?", "Action_Plan"),
				openEnded("l6-action-2", "What specific skills or knowledge gaps do you need to address for your target careers?", "Action_Plan"),
				openEnded("l6-action-3", "Who can help you on this journey? (Mentors, peers, family, online groups)", "Action_Plan"),
			},
		},
	},
}

// Layers returns the full ordered catalog.
func Layers() []model.AssessmentLayer {
	return layers
}

// LayerCount returns the number of layers in the catalog.
func LayerCount() int {
	return len(layers)
}

// LayerByID returns the layer with the given id, or nil.
func LayerByID(id string) *model.AssessmentLayer {
	for i := range layers {
		if layers[i].ID == id {
			return &layers[i]
		}
	}
	return nil
}

// LayerByIndex returns the layer at the given position, or nil when out of range.
func LayerByIndex(i int) *model.AssessmentLayer {
	if i < 0 || i >= len(layers) {
		return nil
	}
	return &layers[i]
}

// QuestionByID looks a question up across all layers.
func QuestionByID(id string) (*model.Question, *model.AssessmentLayer) {
	for i := range layers {
		for _, name := range layers[i].CategoryOrder {
			for j := range layers[i].Categories[name] {
				if layers[i].Categories[name][j].ID == id {
					return &layers[i].Categories[name][j], &layers[i]
				}
			}
		}
	}
	return nil, nil
}

// ValidResponse reports whether a response references a question that exists
// in the static bank under the layer it claims.
func ValidResponse(r model.Response) bool {
	layer := LayerByID(r.LayerID)
	if layer == nil {
		return false
	}
	for _, question := range layer.Categories[r.CategoryID] {
		if question.ID == r.QuestionID {
			return true
		}
	}
	return false
}
