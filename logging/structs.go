package logging

import (
	"net"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"go.uber.org/zap/zapcore"
)

type IPs []net.IP

func (a IPs) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, ip := range a {
		enc.AppendString(ip.String())
	}
	return nil
}

// Angles logs angles as their decimal degrees
type Angles []gps.Angle

func (a Angles) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, angle := range a {
		enc.AppendFloat64(angle.DecimalDegrees())
	}
	return nil
}
