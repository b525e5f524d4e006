package flows

import "google.golang.org/genai"

// Output schemas handed to Gemini alongside each flow's prompt. These bound
// what the model may return; Validate() on the decoded types is the final
// authority.

func careerRecommendationSchema() *genai.Schema {
	careerPath := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":            {Type: genai.TypeString, Description: "catalog id of the career path, when one was supplied"},
			"name":          {Type: genai.TypeString},
			"matchScore":    {Type: genai.TypeInteger, Minimum: genai.Ptr(0.0), Maximum: genai.Ptr(100.0)},
			"description":   {Type: genai.TypeString},
			"pros":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, MaxItems: genai.Ptr(int64(5))},
			"cons":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, MaxItems: genai.Ptr(int64(5))},
			"averageSalary": {Type: genai.TypeString, Description: "annual range in INR, e.g. \"6-12 LPA\""},
			"topColleges":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, MaxItems: genai.Ptr(int64(5))},
		},
		Required: []string{"name", "matchScore", "description"},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"personalityType": {Type: genai.TypeString},
			"topCareerPaths": {
				Type:     genai.TypeArray,
				Items:    careerPath,
				MinItems: genai.Ptr(int64(3)),
				MaxItems: genai.Ptr(int64(3)),
			},
			"emergingFields": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"whyRelevant": {Type: genai.TypeString},
					},
					Required: []string{"name", "description"},
				},
				MaxItems: genai.Ptr(int64(2)),
			},
			"roadmap": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"shortTerm":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"mediumTerm": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"longTerm":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
			},
			"marketInsights": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"demandLevel":   {Type: genai.TypeString, Enum: []string{"low", "moderate", "high"}},
					"growthOutlook": {Type: genai.TypeString},
					"keySectors":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
				Required: []string{"demandLevel"},
			},
			"synthesis": {Type: genai.TypeString},
		},
		Required: []string{"personalityType", "topCareerPaths", "roadmap", "marketInsights", "synthesis"},
	}
}

func quizQuestionsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"questions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id":       {Type: genai.TypeString},
						"question": {Type: genai.TypeString},
						"type":     {Type: genai.TypeString, Enum: []string{"single_choice", "text"}},
						"options":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, MaxItems: genai.Ptr(int64(6))},
						"required": {Type: genai.TypeBoolean},
						"category": {Type: genai.TypeString},
					},
					Required: []string{"id", "question", "type", "category"},
				},
				MinItems: genai.Ptr(int64(1)),
				MaxItems: genai.Ptr(int64(MaxQuizQuestions)),
			},
		},
		Required: []string{"questions"},
	}
}

func customCareerPathSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":              {Type: genai.TypeString},
			"overview":          {Type: genai.TypeString},
			"requiredEducation": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, MaxItems: genai.Ptr(int64(6))},
			"keySkills":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, MaxItems: genai.Ptr(int64(8))},
			"salaryRange":       {Type: genai.TypeString},
			"roadmap":           {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, MaxItems: genai.Ptr(int64(8))},
		},
		Required: []string{"name", "overview"},
	}
}
