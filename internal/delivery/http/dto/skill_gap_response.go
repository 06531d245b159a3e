package dto

import "career-compass/internal/usecase"

type CourseRecommendationResponse struct {
	Name       string   `json:"name"`
	URL        string   `json:"url"`
	Rating     *float64 `json:"rating"`
	Difficulty *string  `json:"difficulty"`
	Tags       []string `json:"tags"`
	ForSkill   string   `json:"for_skill"`
}

type SkillGapResponse struct {
	UserSkills         []string                       `json:"user_skills"`
	TrendingSkills     []string                       `json:"trending_skills"`
	MissingSkills      []string                       `json:"missing_skills"`
	RecommendedCourses []CourseRecommendationResponse `json:"recommended_courses"`
}

func FromSkillGapReport(r usecase.SkillGapReport) SkillGapResponse {
	courses := make([]CourseRecommendationResponse, 0, len(r.RecommendedCourses))
	for _, c := range r.RecommendedCourses {
		tags := c.Tags
		if tags == nil {
			tags = []string{}
		}
		courses = append(courses, CourseRecommendationResponse{
			Name:       c.Name,
			URL:        c.URL,
			Rating:     c.Rating,
			Difficulty: c.Difficulty,
			Tags:       tags,
			ForSkill:   c.ForSkill,
		})
	}
	return SkillGapResponse{
		UserSkills:         emptyIfNil(r.UserSkills),
		TrendingSkills:     emptyIfNil(r.TrendingSkills),
		MissingSkills:      emptyIfNil(r.MissingSkills),
		RecommendedCourses: courses,
	}
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
