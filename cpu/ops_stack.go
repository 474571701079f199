package cpu

func opPHA(c *CPU, mode addressingMode, r resolved) bool {
	c.push(c.A)
	return false
}

func opPHP(c *CPU, mode addressingMode, r resolved) bool {
	// PHP always pushes with the break and unused bits set, regardless
	// of their current value.
	saved := c.P
	c.P.B = true
	c.P.U = true
	c.push(c.P.encode())
	c.P = saved
	return false
}

func opPLA(c *CPU, mode addressingMode, r resolved) bool {
	c.A = c.pop()
	c.P.setNZ(c.A)
	return false
}

func opPLP(c *CPU, mode addressingMode, r resolved) bool {
	c.P.decodeFrom(c.pop())
	c.P.B = false
	c.P.U = true
	return false
}
