package core

import "go.uber.org/zap"

// Authenticator checks login or sign-up credentials.
type Authenticator interface {
	Authenticate(email, phone, password string) error
}

type ThresholdSaver interface {
	SaveThreshold(sensorID string, value int) error
}

type DeviceAdder interface {
	AddDevice() error
}

type Hooks struct {
	Auth      Authenticator
	Threshold ThresholdSaver
	Devices   DeviceAdder
}

// StubHooks accepts every request and logs it.
func StubHooks(logger *zap.Logger) Hooks {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := stubHooks{log: logger}
	return Hooks{Auth: s, Threshold: s, Devices: s}
}

type stubHooks struct {
	log *zap.Logger
}

func (s stubHooks) Authenticate(email, phone, _ string) error {
	s.log.Info("authenticate (stub)", zap.Bool("email", email != ""), zap.Bool("phone", phone != ""))
	return nil
}

func (s stubHooks) SaveThreshold(sensorID string, value int) error {
	s.log.Info("save threshold (stub)", zap.String("sensor", sensorID), zap.Int("value", value))
	return nil
}

func (s stubHooks) AddDevice() error {
	s.log.Info("add device (stub)")
	return nil
}
