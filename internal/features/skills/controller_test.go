package skills

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	users_enums "workforce/internal/features/users/enums"
	users_middleware "workforce/internal/features/users/middleware"
	users_models "workforce/internal/features/users/models"
	users_testing "workforce/internal/features/users/testing"
	test_utils "workforce/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type skillTestEnv struct {
	router       *gin.Engine
	skillService *SkillService
	mappings     *MemoryMappingRepository

	admin         *users_models.User
	adminToken    string
	employee      *users_models.User
	employeeToken string
}

func newSkillTestEnv(t *testing.T) *skillTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userService, userRepository := users_testing.NewTestUserService()
	skillService, _, mappings := NewTestSkillService()

	admin, adminToken := users_testing.CreateTestUser(userService, userRepository, users_enums.UserRoleAdmin)
	employee, employeeToken := users_testing.CreateTestUser(userService, userRepository, users_enums.UserRoleEmployee)

	controller := &SkillController{skillService: skillService}

	router := gin.New()
	api := router.Group("/api")
	protected := api.Group("")
	protected.Use(users_middleware.AuthMiddleware(userService))
	controller.RegisterRoutes(protected)

	return &skillTestEnv{
		router:        router,
		skillService:  skillService,
		mappings:      mappings,
		admin:         admin,
		adminToken:    "Bearer " + adminToken,
		employee:      employee,
		employeeToken: "Bearer " + employeeToken,
	}
}

func (e *skillTestEnv) createSkill(t *testing.T, name, category string) Skill {
	t.Helper()

	var skill Skill
	test_utils.MakePostRequestAndUnmarshal(
		t, e.router, "/api/skills", e.adminToken,
		map[string]any{"name": name, "category": category},
		http.StatusCreated, &skill,
	)

	return skill
}

func Test_CreateSkill_AsAdmin_ReturnsCreatedSkill(t *testing.T) {
	env := newSkillTestEnv(t)

	skill := env.createSkill(t, "React.js", "Frontend")

	assert.Equal(t, "React.js", skill.Name)
	assert.Equal(t, "Frontend", skill.Category)
	assert.NotZero(t, skill.ID)
}

func Test_CreateSkill_AsEmployee_ReturnsForbidden(t *testing.T) {
	env := newSkillTestEnv(t)

	test_utils.MakePostRequest(
		t, env.router, "/api/skills", env.employeeToken,
		map[string]any{"name": "React.js", "category": "Frontend"},
		http.StatusForbidden,
	)
}

func Test_CreateSkill_WithDuplicateName_ReturnsValidationError(t *testing.T) {
	env := newSkillTestEnv(t)

	env.createSkill(t, "React.js", "Frontend")

	resp := test_utils.MakePostRequest(
		t, env.router, "/api/skills", env.adminToken,
		map[string]any{"name": "React.js", "category": "Frontend"},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Skill already exists")
}

func Test_UpdateSkill_RenamesSkill(t *testing.T) {
	env := newSkillTestEnv(t)

	skill := env.createSkill(t, "React", "Frontend")

	var updated Skill
	resp := test_utils.MakePatchRequest(
		t, env.router, fmt.Sprintf("/api/skills/%d", skill.ID), env.adminToken,
		map[string]any{"name": "React.js"},
		http.StatusOK,
	)
	require.NoError(t, json.Unmarshal(resp.Body, &updated))

	assert.Equal(t, "React.js", updated.Name)
	assert.Equal(t, "Frontend", updated.Category)
}

func Test_UpdateSkill_WithUnknownID_ReturnsNotFound(t *testing.T) {
	env := newSkillTestEnv(t)

	test_utils.MakePatchRequest(
		t, env.router, "/api/skills/999", env.adminToken,
		map[string]any{"name": "Renamed"},
		http.StatusNotFound,
	)
}

func Test_DeleteSkill_WithEmployeeRatings_FailsAndSkillRemains(t *testing.T) {
	env := newSkillTestEnv(t)

	skill := env.createSkill(t, "React.js", "Frontend")

	_, err := env.skillService.UpsertEmployeeSkill(env.employee.ID, &UpsertSkillMappingRequestDTO{
		SkillID:           skill.ID,
		ExperienceBand:    Band2To5,
		Rating:            RatingIntermediate,
		YearsOfExperience: 3,
	}, env.employee)
	require.NoError(t, err)

	resp := test_utils.MakeDeleteRequest(
		t, env.router, fmt.Sprintf("/api/skills/%d", skill.ID), env.adminToken,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Cannot delete skill that's in use")

	var allSkills []Skill
	test_utils.MakeGetRequestAndUnmarshal(
		t, env.router, "/api/skills", env.employeeToken, http.StatusOK, &allSkills,
	)
	require.Len(t, allSkills, 1)
	assert.Equal(t, "React.js", allSkills[0].Name)
}

func Test_DeleteSkill_WithoutReferences_RemovesSkill(t *testing.T) {
	env := newSkillTestEnv(t)

	skill := env.createSkill(t, "React.js", "Frontend")

	test_utils.MakeDeleteRequest(
		t, env.router, fmt.Sprintf("/api/skills/%d", skill.ID), env.adminToken,
		http.StatusOK,
	)

	var allSkills []Skill
	test_utils.MakeGetRequestAndUnmarshal(
		t, env.router, "/api/skills", env.employeeToken, http.StatusOK, &allSkills,
	)
	assert.Empty(t, allSkills)
}

func Test_CreateCategory_WithDuplicateName_ReturnsValidationError(t *testing.T) {
	env := newSkillTestEnv(t)

	test_utils.MakePostRequest(
		t, env.router, "/api/categories", env.adminToken,
		map[string]any{"name": "Frontend"}, http.StatusCreated,
	)

	resp := test_utils.MakePostRequest(
		t, env.router, "/api/categories", env.adminToken,
		map[string]any{"name": "frontend"}, http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Category already exists")
}

func Test_DeleteCategory_UsedBySkills_ReturnsValidationError(t *testing.T) {
	env := newSkillTestEnv(t)

	var category SkillCategory
	test_utils.MakePostRequestAndUnmarshal(
		t, env.router, "/api/categories", env.adminToken,
		map[string]any{"name": "Frontend"}, http.StatusCreated, &category,
	)
	env.createSkill(t, "React.js", "Frontend")

	resp := test_utils.MakeDeleteRequest(
		t, env.router, fmt.Sprintf("/api/categories/%d", category.ID), env.adminToken,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Cannot delete category that's in use by skills")
}

func Test_UpsertEmployeeSkill_ForSelf_CreatesMapping(t *testing.T) {
	env := newSkillTestEnv(t)

	skill := env.createSkill(t, "React.js", "Frontend")

	var mapping SkillMappingResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, env.router, fmt.Sprintf("/api/employees/%d/skills", env.employee.ID), env.employeeToken,
		map[string]any{
			"skillId":           skill.ID,
			"experienceBand":    "2-5",
			"rating":            "Intermediate",
			"yearsOfExperience": 3,
		},
		http.StatusCreated, &mapping,
	)

	assert.Equal(t, skill.ID, mapping.SkillID)
	assert.Equal(t, "React.js", mapping.SkillName)
	assert.Equal(t, Band2To5, mapping.ExperienceBand)
}

func Test_UpsertEmployeeSkill_ForAnotherEmployee_ReturnsForbidden(t *testing.T) {
	env := newSkillTestEnv(t)

	skill := env.createSkill(t, "React.js", "Frontend")

	test_utils.MakePostRequest(
		t, env.router, fmt.Sprintf("/api/employees/%d/skills", env.admin.ID), env.employeeToken,
		map[string]any{
			"skillId":           skill.ID,
			"experienceBand":    "2-5",
			"rating":            "Intermediate",
			"yearsOfExperience": 3,
		},
		http.StatusForbidden,
	)
}

func Test_UpsertEmployeeSkill_SameSkillAndBand_UpdatesInPlace(t *testing.T) {
	env := newSkillTestEnv(t)

	skill := env.createSkill(t, "React.js", "Frontend")
	url := fmt.Sprintf("/api/employees/%d/skills", env.employee.ID)

	test_utils.MakePostRequest(t, env.router, url, env.employeeToken, map[string]any{
		"skillId":           skill.ID,
		"experienceBand":    "2-5",
		"rating":            "Beginner",
		"yearsOfExperience": 2,
	}, http.StatusCreated)

	test_utils.MakePostRequest(t, env.router, url, env.employeeToken, map[string]any{
		"skillId":           skill.ID,
		"experienceBand":    "2-5",
		"rating":            "Expert",
		"yearsOfExperience": 4,
	}, http.StatusCreated)

	var mappings []SkillMappingResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, env.router, url, env.employeeToken, http.StatusOK, &mappings)

	require.Len(t, mappings, 1)
	assert.Equal(t, RatingExpert, mappings[0].Rating)
	assert.Equal(t, float64(4), mappings[0].YearsOfExperience)
}

func Test_UpsertEmployeeSkill_WithInvalidBand_ReturnsValidationError(t *testing.T) {
	env := newSkillTestEnv(t)

	skill := env.createSkill(t, "React.js", "Frontend")

	resp := test_utils.MakePostRequest(
		t, env.router, fmt.Sprintf("/api/employees/%d/skills", env.employee.ID), env.employeeToken,
		map[string]any{
			"skillId":           skill.ID,
			"experienceBand":    "3-4",
			"rating":            "Intermediate",
			"yearsOfExperience": 3,
		},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Invalid experience band")
}

func Test_GetEmployeeSkills_AsAdmin_ReturnsMappings(t *testing.T) {
	env := newSkillTestEnv(t)

	skill := env.createSkill(t, "React.js", "Frontend")

	_, err := env.skillService.UpsertEmployeeSkill(env.employee.ID, &UpsertSkillMappingRequestDTO{
		SkillID:           skill.ID,
		ExperienceBand:    Band0To2,
		Rating:            RatingBeginner,
		YearsOfExperience: 1,
	}, env.employee)
	require.NoError(t, err)

	var mappings []SkillMappingResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, env.router, fmt.Sprintf("/api/employees/%d/skills", env.employee.ID), env.adminToken,
		http.StatusOK, &mappings,
	)

	require.Len(t, mappings, 1)
	assert.Equal(t, env.employee.ID, mappings[0].EmployeeID)
}

func Test_GetEmployeeSkills_AsOtherEmployee_ReturnsForbidden(t *testing.T) {
	env := newSkillTestEnv(t)

	test_utils.MakeGetRequest(
		t, env.router, fmt.Sprintf("/api/employees/%d/skills", env.admin.ID), env.employeeToken,
		http.StatusForbidden,
	)
}
