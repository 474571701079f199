package cpu

func opLDA(c *CPU, mode addressingMode, r resolved) bool {
	c.A = c.bus.Read(r.addr)
	c.P.setNZ(c.A)
	return false
}

func opLDX(c *CPU, mode addressingMode, r resolved) bool {
	c.X = c.bus.Read(r.addr)
	c.P.setNZ(c.X)
	return false
}

func opLDY(c *CPU, mode addressingMode, r resolved) bool {
	c.Y = c.bus.Read(r.addr)
	c.P.setNZ(c.Y)
	return false
}

func opSTA(c *CPU, mode addressingMode, r resolved) bool {
	c.busWrite(r.addr, c.A)
	return false
}

func opSTX(c *CPU, mode addressingMode, r resolved) bool {
	c.busWrite(r.addr, c.X)
	return false
}

func opSTY(c *CPU, mode addressingMode, r resolved) bool {
	c.busWrite(r.addr, c.Y)
	return false
}
