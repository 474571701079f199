package cpu

func opASL(c *CPU, mode addressingMode, r resolved) bool {
	if mode == accumulator {
		c.P.C = c.A&0x80 != 0
		c.A <<= 1
		c.P.setNZ(c.A)
		return false
	}
	v := c.bus.Read(r.addr)
	c.P.C = v&0x80 != 0
	v <<= 1
	c.busWrite(r.addr, v)
	c.P.setNZ(v)
	return false
}

func opLSR(c *CPU, mode addressingMode, r resolved) bool {
	if mode == accumulator {
		c.P.C = c.A&0x01 != 0
		c.A >>= 1
		c.P.setNZ(c.A)
		return false
	}
	v := c.bus.Read(r.addr)
	c.P.C = v&0x01 != 0
	v >>= 1
	c.busWrite(r.addr, v)
	c.P.setNZ(v)
	return false
}

func opROL(c *CPU, mode addressingMode, r resolved) bool {
	oldCarry := byte(0)
	if c.P.C {
		oldCarry = 1
	}
	if mode == accumulator {
		c.P.C = c.A&0x80 != 0
		c.A = (c.A << 1) | oldCarry
		c.P.setNZ(c.A)
		return false
	}
	v := c.bus.Read(r.addr)
	c.P.C = v&0x80 != 0
	v = (v << 1) | oldCarry
	c.busWrite(r.addr, v)
	c.P.setNZ(v)
	return false
}

func opROR(c *CPU, mode addressingMode, r resolved) bool {
	oldCarry := byte(0)
	if c.P.C {
		oldCarry = 0x80
	}
	if mode == accumulator {
		c.P.C = c.A&0x01 != 0
		c.A = (c.A >> 1) | oldCarry
		c.P.setNZ(c.A)
		return false
	}
	v := c.bus.Read(r.addr)
	c.P.C = v&0x01 != 0
	v = (v >> 1) | oldCarry
	c.busWrite(r.addr, v)
	c.P.setNZ(v)
	return false
}

func opINC(c *CPU, mode addressingMode, r resolved) bool {
	v := c.bus.Read(r.addr) + 1
	c.busWrite(r.addr, v)
	c.P.setNZ(v)
	return false
}

func opDEC(c *CPU, mode addressingMode, r resolved) bool {
	v := c.bus.Read(r.addr) - 1
	c.busWrite(r.addr, v)
	c.P.setNZ(v)
	return false
}

func opINX(c *CPU, mode addressingMode, r resolved) bool {
	c.X++
	c.P.setNZ(c.X)
	return false
}

func opINY(c *CPU, mode addressingMode, r resolved) bool {
	c.Y++
	c.P.setNZ(c.Y)
	return false
}

func opDEX(c *CPU, mode addressingMode, r resolved) bool {
	c.X--
	c.P.setNZ(c.X)
	return false
}

func opDEY(c *CPU, mode addressingMode, r resolved) bool {
	c.Y--
	c.P.setNZ(c.Y)
	return false
}
