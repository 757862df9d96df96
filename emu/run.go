package emu

// StepObserver is called after every successfully retired instruction, used
// by debug mode to reprint register state between steps (§6.5).
type StepObserver func(cpu *CPU, d Decoded)

// Run fetches, decodes, and executes instructions until halt, an error, or
// maxSteps instructions have retired (maxSteps<=0 means unbounded). observe,
// if non-nil, runs after each instruction.
func Run(cpu *CPU, maxSteps uint64, observe StepObserver) error {
	for cpu.Running {
		if maxSteps > 0 && cpu.Steps >= maxSteps {
			return nil
		}

		word, err := cpu.Mem.Load(cpu.PC)
		if err != nil {
			return err
		}
		cpu.IR = word

		d, err := Decode(word)
		if err != nil {
			return err
		}

		result, err := Execute(cpu, d)
		if err != nil {
			return err
		}

		cpu.Steps++

		switch result {
		case StepHalt:
			cpu.Running = false
		case StepBranch:
			// pc already set by Execute
		case StepNormal:
			cpu.PC++
		}

		if observe != nil {
			observe(cpu, d)
		}
	}
	return nil
}
