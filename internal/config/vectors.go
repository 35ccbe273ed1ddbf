package config

import "github.com/go-gl/mathgl/mgl32"

// The accessors below assume Resolve has run.

func (c *Config) CameraPosition() mgl32.Vec3  { return mgl32.Vec3(*c.Camera.Position) }
func (c *Config) CameraDirection() mgl32.Vec3 { return mgl32.Vec3(*c.Camera.Direction) }
func (c *Config) AlbedoColor() mgl32.Vec4     { return mgl32.Vec4(*c.Albedo) }
func (c *Config) Light() mgl32.Vec3           { return mgl32.Vec3(*c.LightDir) }
func (c *Config) Sphere() mgl32.Vec3          { return mgl32.Vec3(c.SphereOrigin) }
