package cpu

func opCLC(c *CPU, mode addressingMode, r resolved) bool { c.P.C = false; return false }
func opSEC(c *CPU, mode addressingMode, r resolved) bool { c.P.C = true; return false }
func opCLI(c *CPU, mode addressingMode, r resolved) bool { c.P.I = false; return false }
func opSEI(c *CPU, mode addressingMode, r resolved) bool { c.P.I = true; return false }
func opCLV(c *CPU, mode addressingMode, r resolved) bool { c.P.V = false; return false }
func opCLD(c *CPU, mode addressingMode, r resolved) bool { c.P.D = false; return false }
func opSED(c *CPU, mode addressingMode, r resolved) bool { c.P.D = true; return false }

func opNOP(c *CPU, mode addressingMode, r resolved) bool { return false }
