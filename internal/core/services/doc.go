// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The README pipeline is split into small pieces that are tested on
// their own:
//
//   - InclusionFilter decides which paths are scanned
//   - Scanner walks the repository tree depth-first with an explicit worklist
//   - Partition splits included files into ordered batches
//   - PromptBuilder renders one prompt per batch
//   - Assemble joins the non-empty fragments
//
// ReadmeService wires them together for a single sequential run.
package services
