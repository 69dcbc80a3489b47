package cmd

import (
	"fmt"
	"os"

	"github.com/anthropics/goap-engine/internal/domain"
	"github.com/anthropics/goap-engine/internal/model"
)

func loadModel() ([]domain.Variable, []domain.Transition, error) {
	if modelPath == "" {
		return nil, nil, fmt.Errorf("--model is required")
	}
	data, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read model file: %w", err)
	}
	return model.ParseModel(data)
}

func loadStateFile(path string) ([]domain.VariableValue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return model.ParseInitialState(data)
}

func loadGoalFile(path string) ([]domain.Condition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read goal file: %w", err)
	}
	return model.ParseGoal(data)
}

func findTransition(transitions []domain.Transition, id string) (domain.Transition, error) {
	for _, t := range transitions {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Transition{}, fmt.Errorf("transition %q not found in model", id)
}
