package main

import (
	"github.com/fornellas/gct/gcode"
)

// CenterValue is a pflag.Value for a rotation center in compact "XxY"
// format, validated at flag parse time.
type CenterValue struct {
	str   string
	point gcode.Point
}

func NewCenterValue(value string) *CenterValue {
	c := &CenterValue{}
	if err := c.Set(value); err != nil {
		panic(err)
	}
	return c
}

func (c *CenterValue) String() string {
	return c.str
}

func (c *CenterValue) Set(value string) error {
	point, err := gcode.ParseCenter(value)
	if err != nil {
		return err
	}
	c.str = value
	c.point = point
	return nil
}

func (c *CenterValue) Type() string {
	return "XxY"
}

func (c *CenterValue) Point() gcode.Point {
	return c.point
}
