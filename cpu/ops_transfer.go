package cpu

func opTAX(c *CPU, mode addressingMode, r resolved) bool {
	c.X = c.A
	c.P.setNZ(c.X)
	return false
}

func opTAY(c *CPU, mode addressingMode, r resolved) bool {
	c.Y = c.A
	c.P.setNZ(c.Y)
	return false
}

func opTXA(c *CPU, mode addressingMode, r resolved) bool {
	c.A = c.X
	c.P.setNZ(c.A)
	return false
}

func opTYA(c *CPU, mode addressingMode, r resolved) bool {
	c.A = c.Y
	c.P.setNZ(c.A)
	return false
}

func opTSX(c *CPU, mode addressingMode, r resolved) bool {
	c.X = c.S
	c.P.setNZ(c.X)
	return false
}

func opTXS(c *CPU, mode addressingMode, r resolved) bool {
	c.S = c.X
	return false
}
