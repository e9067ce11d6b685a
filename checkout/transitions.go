package checkout

import "bistro-chat-api/models"

// Transition defines a valid step change in the checkout dialogue and
// what triggers it
type Transition struct {
	From    models.CheckoutStep `json:"from"`
	To      models.CheckoutStep `json:"to"`
	Trigger string              `json:"trigger"`
}

// validTransitions is the authoritative flow definition
var validTransitions = []Transition{
	{From: models.StepIdle, To: models.StepType, Trigger: "checkout started with non-empty cart"},
	{From: models.StepType, To: models.StepName, Trigger: "order type chosen, no saved profile"},
	{From: models.StepType, To: models.StepExtra, Trigger: "order type chosen, profile auto-fills name and phone"},
	{From: models.StepType, To: models.StepConfirm, Trigger: "delivery chosen, profile auto-fills address too"},
	{From: models.StepName, To: models.StepPhone, Trigger: "name entered"},
	{From: models.StepPhone, To: models.StepExtra, Trigger: "phone entered"},
	{From: models.StepExtra, To: models.StepConfirm, Trigger: "address, pickup time or table entered"},
	{From: models.StepConfirm, To: models.StepEdit, Trigger: "edit details requested"},
	{From: models.StepEdit, To: models.StepConfirm, Trigger: "edit saved or abandoned"},
	{From: models.StepConfirm, To: models.StepIdle, Trigger: "order placed"},
	{From: models.StepType, To: models.StepIdle, Trigger: "checkout cancelled"},
	{From: models.StepName, To: models.StepIdle, Trigger: "checkout cancelled"},
	{From: models.StepPhone, To: models.StepIdle, Trigger: "checkout cancelled"},
	{From: models.StepExtra, To: models.StepIdle, Trigger: "checkout cancelled"},
	{From: models.StepConfirm, To: models.StepIdle, Trigger: "checkout cancelled"},
}

type transitionKey struct {
	From models.CheckoutStep
	To   models.CheckoutStep
}

// Lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// CanTransition checks whether a step change is part of the flow
func CanTransition(from, to models.CheckoutStep) bool {
	return transitionMap[transitionKey{from, to}]
}

// NextSteps returns all valid next steps from a given step
func NextSteps(from models.CheckoutStep) []models.CheckoutStep {
	var nexts []models.CheckoutStep
	seen := map[models.CheckoutStep]bool{}
	for _, t := range validTransitions {
		if t.From == from && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// AllTransitions returns the full flow for documentation
func AllTransitions() []Transition {
	return validTransitions
}
