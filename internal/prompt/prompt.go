// Package prompt builds the single user message sent to the model.
package prompt

// DefaultInstruction is the exam-generation template pre-filled in the prompt box.
const DefaultInstruction = `Design a model exam paper for a course on computer science, with 5 modules, each having 2 main questions (Q1/Q2, Q3/Q4, etc.). Each main question should have sub-parts with specific mark allocations. Ensure questions cover key concepts from the syllabus and include problem-solving, diagrams, protocols, and algorithms as applicable. Follow the format:
Module 1
Q1 (a) [10 marks] (b) [10 marks]
Q2 (a) [7 marks] (b) [8 marks] (c) [5 marks]
Module 2
Q3 (a) [10 marks] (b) [10 marks]
Q4 (a) [7 marks] (b) [8 marks] (c) [5 marks]
... (similar format for Modules 3-5)
Note: The marks allocation is indicative and can be adjusted according to specific requirements
`

const separator = "\n\n"

// Compose joins the instruction and the extracted document text with a blank line.
// Neither part is validated.
func Compose(instruction, text string) string {
	return instruction + separator + text
}
