package tests

// Mock generation example for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name PlannerService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename planner_service_mock.go --with-expecter
