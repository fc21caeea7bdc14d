package projects_controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	projects_dto "workforce/internal/features/projects/dto"
	projects_testing "workforce/internal/features/projects/testing"
	"workforce/internal/features/skills"
	users_enums "workforce/internal/features/users/enums"
	users_middleware "workforce/internal/features/users/middleware"
	users_models "workforce/internal/features/users/models"
	users_services "workforce/internal/features/users/services"
	users_testing "workforce/internal/features/users/testing"
	test_utils "workforce/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type projectTestEnv struct {
	router *gin.Engine
	env    *projects_testing.TestProjectEnv

	admin         *users_models.User
	adminToken    string
	manager       *users_models.User
	managerToken  string
	employee      *users_models.User
	employeeToken string
}

func newProjectTestEnv(t *testing.T) *projectTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := projects_testing.NewTestProjectEnv()

	// auth and the project service read users from the same store
	userService := users_services.NewUserService(env.UserRepository)
	userService.SetActivityWriter(users_testing.ActivityWriterStub{})

	admin, adminToken := users_testing.CreateTestUser(userService, env.UserRepository, users_enums.UserRoleAdmin)
	manager, managerToken := users_testing.CreateTestUser(userService, env.UserRepository, users_enums.UserRoleProjectManager)
	employee, employeeToken := users_testing.CreateTestUser(userService, env.UserRepository, users_enums.UserRoleEmployee)

	controller := &ProjectController{projectService: env.Service}

	router := gin.New()
	api := router.Group("/api")
	protected := api.Group("")
	protected.Use(users_middleware.AuthMiddleware(userService))
	controller.RegisterRoutes(protected)

	return &projectTestEnv{
		router:        router,
		env:           env,
		admin:         admin,
		adminToken:    "Bearer " + adminToken,
		manager:       manager,
		managerToken:  "Bearer " + managerToken,
		employee:      employee,
		employeeToken: "Bearer " + employeeToken,
	}
}

func projectBody(code string) map[string]any {
	return map[string]any{
		"name":        "Platform Rebuild",
		"code":        code,
		"description": "Backend overhaul",
		"startDate":   time.Now().UTC().Format(time.RFC3339),
		"endDate":     time.Now().UTC().AddDate(0, 6, 0).Format(time.RFC3339),
	}
}

func (e *projectTestEnv) createProject(t *testing.T, code string) projects_dto.ProjectListItemDTO {
	t.Helper()

	var project projects_dto.ProjectListItemDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, e.router, "/api/projects", e.adminToken, projectBody(code), http.StatusCreated, &project,
	)

	return project
}

func (e *projectTestEnv) createSkill(t *testing.T, name string) *skills.Skill {
	t.Helper()

	skill := &skills.Skill{Name: name, Category: "Backend"}
	require.NoError(t, e.env.SkillRepo.CreateSkill(skill))

	return skill
}

func Test_CreateProject_AsAdmin_ReturnsCreatedProject(t *testing.T) {
	env := newProjectTestEnv(t)

	project := env.createProject(t, "PLAT-01")

	assert.Equal(t, "Platform Rebuild", project.Name)
	assert.Equal(t, "PLAT-01", project.Code)
	assert.Equal(t, env.admin.ID, project.CreatedBy)
}

func Test_CreateProject_AsProjectManager_ReturnsForbidden(t *testing.T) {
	env := newProjectTestEnv(t)

	test_utils.MakePostRequest(
		t, env.router, "/api/projects", env.managerToken, projectBody("PLAT-01"), http.StatusForbidden,
	)
}

func Test_CreateProject_WithDuplicateCode_ReturnsValidationError(t *testing.T) {
	env := newProjectTestEnv(t)

	env.createProject(t, "PLAT-01")

	resp := test_utils.MakePostRequest(
		t, env.router, "/api/projects", env.adminToken, projectBody("PLAT-01"), http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Project code already exists")
}

func Test_CreateProject_WithEndDateBeforeStartDate_ReturnsValidationError(t *testing.T) {
	env := newProjectTestEnv(t)

	body := projectBody("PLAT-01")
	body["endDate"] = time.Now().UTC().AddDate(0, 0, -10).Format(time.RFC3339)

	resp := test_utils.MakePostRequest(
		t, env.router, "/api/projects", env.adminToken, body, http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "End date cannot be before start date")
}

func Test_GetProjectDetail_WithUnknownID_ReturnsNotFound(t *testing.T) {
	env := newProjectTestEnv(t)

	test_utils.MakeGetRequest(t, env.router, "/api/projects/999", env.employeeToken, http.StatusNotFound)
}

func Test_AddRequirement_WithUnknownSkill_ReturnsValidationError(t *testing.T) {
	env := newProjectTestEnv(t)

	project := env.createProject(t, "PLAT-01")

	resp := test_utils.MakePostRequest(
		t, env.router, fmt.Sprintf("/api/projects/%d/requirements", project.ID), env.adminToken,
		map[string]any{"skillId": 42, "experienceBand": "2-5", "peopleNeeded": 2, "hoursPerMonth": 160},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Skill not found")
}

func Test_AddAssignment_AsProjectManager_Succeeds(t *testing.T) {
	env := newProjectTestEnv(t)

	project := env.createProject(t, "PLAT-01")
	skill := env.createSkill(t, "Go")

	test_utils.MakePostRequest(
		t, env.router, fmt.Sprintf("/api/projects/%d/assignments", project.ID), env.managerToken,
		map[string]any{
			"employeeId":            env.employee.ID,
			"skillId":               skill.ID,
			"experienceBand":        "2-5",
			"assignedHoursPerMonth": 120,
		},
		http.StatusCreated,
	)
}

func Test_AddAssignment_WithNonEmployeeUser_ReturnsValidationError(t *testing.T) {
	env := newProjectTestEnv(t)

	project := env.createProject(t, "PLAT-01")
	skill := env.createSkill(t, "Go")

	resp := test_utils.MakePostRequest(
		t, env.router, fmt.Sprintf("/api/projects/%d/assignments", project.ID), env.adminToken,
		map[string]any{
			"employeeId":            env.manager.ID,
			"skillId":               skill.ID,
			"experienceBand":        "2-5",
			"assignedHoursPerMonth": 120,
		},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Employee not found")
}

func Test_GetProjects_WithFourRequirementsAndTwoAssignments_ReturnsFiftyPercent(t *testing.T) {
	env := newProjectTestEnv(t)

	project := env.createProject(t, "PLAT-01")
	skill := env.createSkill(t, "Go")

	for i := 0; i < 4; i++ {
		test_utils.MakePostRequest(
			t, env.router, fmt.Sprintf("/api/projects/%d/requirements", project.ID), env.adminToken,
			map[string]any{"skillId": skill.ID, "experienceBand": "2-5", "peopleNeeded": 1, "hoursPerMonth": 160},
			http.StatusCreated,
		)
	}

	secondEmployee := &users_models.User{
		Username: "dev2", Name: "Dev Two", Email: "dev2@example.com",
		Role: users_enums.UserRoleEmployee, HashedPassword: "$2a$10$test",
	}
	require.NoError(t, env.env.UserRepository.CreateUser(secondEmployee))

	for _, employeeID := range []int64{env.employee.ID, secondEmployee.ID} {
		test_utils.MakePostRequest(
			t, env.router, fmt.Sprintf("/api/projects/%d/assignments", project.ID), env.adminToken,
			map[string]any{
				"employeeId":            employeeID,
				"skillId":               skill.ID,
				"experienceBand":        "2-5",
				"assignedHoursPerMonth": 120,
			},
			http.StatusCreated,
		)
	}

	var projects []projects_dto.ProjectListItemDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, env.router, "/api/projects", env.employeeToken, http.StatusOK, &projects,
	)

	require.Len(t, projects, 1)
	assert.Equal(t, 4, projects[0].RequirementsCount)
	assert.Equal(t, 2, projects[0].AssignmentsCount)
	assert.Equal(t, 50, projects[0].FulfillmentPercentage)
}

func Test_GetProjects_WithZeroRequirements_ReturnsZeroFulfillment(t *testing.T) {
	env := newProjectTestEnv(t)

	env.createProject(t, "PLAT-01")

	var projects []projects_dto.ProjectListItemDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, env.router, "/api/projects", env.employeeToken, http.StatusOK, &projects,
	)

	require.Len(t, projects, 1)
	assert.Equal(t, 0, projects[0].FulfillmentPercentage)
}

func Test_GetProjectDetail_ComputesPerRequirementFulfillment(t *testing.T) {
	env := newProjectTestEnv(t)

	project := env.createProject(t, "PLAT-01")
	goSkill := env.createSkill(t, "Go")
	reactSkill := env.createSkill(t, "React.js")

	test_utils.MakePostRequest(
		t, env.router, fmt.Sprintf("/api/projects/%d/requirements", project.ID), env.adminToken,
		map[string]any{"skillId": goSkill.ID, "experienceBand": "2-5", "peopleNeeded": 2, "hoursPerMonth": 160},
		http.StatusCreated,
	)
	test_utils.MakePostRequest(
		t, env.router, fmt.Sprintf("/api/projects/%d/requirements", project.ID), env.adminToken,
		map[string]any{"skillId": reactSkill.ID, "experienceBand": "5-7", "peopleNeeded": 1, "hoursPerMonth": 80},
		http.StatusCreated,
	)

	// one assignment matching the Go requirement's skill and band
	test_utils.MakePostRequest(
		t, env.router, fmt.Sprintf("/api/projects/%d/assignments", project.ID), env.adminToken,
		map[string]any{
			"employeeId":            env.employee.ID,
			"skillId":               goSkill.ID,
			"experienceBand":        "2-5",
			"assignedHoursPerMonth": 120,
		},
		http.StatusCreated,
	)

	var detail projects_dto.ProjectDetailDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, env.router, fmt.Sprintf("/api/projects/%d", project.ID), env.employeeToken,
		http.StatusOK, &detail,
	)

	require.Len(t, detail.Requirements, 2)
	assert.Equal(t, 1, detail.Requirements[0].AssignedCount)
	assert.Equal(t, 50, detail.Requirements[0].FulfillmentPercentage)
	assert.Equal(t, "Go", detail.Requirements[0].SkillName)
	assert.Equal(t, 0, detail.Requirements[1].AssignedCount)
	assert.Equal(t, 0, detail.Requirements[1].FulfillmentPercentage)

	require.Len(t, detail.Assignments, 1)
	assert.Equal(t, env.employee.Name, detail.Assignments[0].EmployeeName)
	assert.Equal(t, env.admin.Name, detail.CreatedByName)
}
