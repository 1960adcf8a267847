//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rincon-reservas/internal/domain/reservation"
	"rincon-reservas/internal/pkg/clock"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/internal/usecase/commands"
	"rincon-reservas/tests/common/builder"
	commandsmock "rincon-reservas/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IntakeCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockMailer   *commandsmock.MockMailer
	mockRenderer *commandsmock.MockEmailRenderer
	mockStore    *commandsmock.MockRecordStore
	clock        *clock.MockClock
	cmds         commands.IntakeCommands
}

func (s *IntakeCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMailer = commandsmock.NewMockMailer(s.mockCtrl)
	s.mockRenderer = commandsmock.NewMockEmailRenderer(s.mockCtrl)
	s.mockStore = commandsmock.NewMockRecordStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 10, 19, 13, 30, 0, 0, time.UTC))

	s.cmds = commands.NewIntakeCommands(s.mockMailer, s.mockRenderer, s.mockStore, s.clock, config.NewTestConfig())
}

func (s *IntakeCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIntakeCommandsSuite(t *testing.T) {
	suite.Run(t, new(IntakeCommandsTestSuite))
}

func (s *IntakeCommandsTestSuite) TestProcessReservation_Validation() {
	cases := []struct {
		name   string
		mutate func(*commands.IntakeInput)
		want   error
	}{
		{"missing details", func(in *commands.IntakeInput) { in.Details = nil }, commands.ErrMissingDetails},
		{"blank reference", func(in *commands.IntakeInput) { in.TransactionReference = "  " }, commands.ErrMissingReference},
		{"missing screenshot", func(in *commands.IntakeInput) { in.ScreenshotDataURL = "" }, commands.ErrMissingScreenshot},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			in := builder.NewReservationBuilder().BuildIntakeInput()
			tc.mutate(&in)

			res, err := s.cmds.ProcessReservation(context.Background(), in)

			s.Nil(res)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *IntakeCommandsTestSuite) TestProcessReservation_SendsBothEmails() {
	b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.AreaIDs = []string{"bohio_potrero"}
	})
	var sent []commands.EmailMessage

	s.mockMailer.EXPECT().Verify(gomock.Any()).Return(nil)
	s.mockRenderer.EXPECT().Render(commands.TemplateIntakeCustomer, gomock.Any()).
		DoAndReturn(func(_ commands.EmailTemplate, data any) (string, error) {
			d, ok := data.(commands.IntakeEmailData)
			s.Require().True(ok)
			s.Equal("Ana Pérez", d.CustomerName)
			s.Equal("19/10/2026, 09:30", d.ReceivedAt)
			s.True(d.HasReceipt)
			return "<p>cliente</p>", nil
		})
	s.mockRenderer.EXPECT().Render(commands.TemplateIntakeBusiness, gomock.Any()).Return("<p>negocio</p>", nil)
	s.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg commands.EmailMessage) error {
			sent = append(sent, msg)
			return nil
		}).Times(2)
	s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.cmds.ProcessReservation(context.Background(), b.BuildIntakeInput())

	s.Require().NoError(err)
	s.True(res.Stored)
	s.Equal(commands.NotificationResult{CustomerSent: true, BusinessSent: true}, res.Notification)
	s.Equal("Ana Pérez", res.CustomerName)
	s.InDelta(b.BuildDetails().TotalVEF, res.TotalAmount, 0.001)

	id := res.Record.SolicitudID()
	s.Require().Len(sent, 2)
	s.Equal([]string{"ana@example.com"}, sent[0].To)
	s.Empty(sent[0].Attachments)
	s.Equal([]string{"reservas@haciendarincongrande.com"}, sent[1].To)
	s.Contains(sent[1].Subject, id)
	s.Require().Len(sent[1].Attachments, 1)
	s.Equal("comprobante-"+id+".jpg", sent[1].Attachments[0].Filename)
	if diff := cmp.Diff(builder.SampleReceipt, sent[1].Attachments[0].Content); diff != "" {
		s.T().Errorf("attachment mismatch (-want +got):\n%s", diff)
	}
}

func (s *IntakeCommandsTestSuite) TestProcessReservation_NotificationFailuresAreAdvisory() {
	s.Run("transport unavailable skips mail", func() {
		s.mockMailer.EXPECT().Verify(gomock.Any()).Return(errors.New("dial tcp: connection refused"))
		s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		res, err := s.cmds.ProcessReservation(context.Background(), builder.NewReservationBuilder().BuildIntakeInput())

		s.Require().NoError(err)
		s.True(res.Notification.Skipped)
		s.Equal(commands.SkipTransportUnavailable, res.Notification.SkipReason)
		s.True(res.Stored)
	})

	s.Run("missing customer email skips mail", func() {
		in := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Email = ""
		}).BuildIntakeInput()
		s.mockMailer.EXPECT().Verify(gomock.Any()).Return(nil)
		s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		res, err := s.cmds.ProcessReservation(context.Background(), in)

		s.Require().NoError(err)
		s.Equal(commands.SkipMissingCustomerEmail, res.Notification.SkipReason)
	})

	s.Run("customer send failure stops before the business email", func() {
		s.mockMailer.EXPECT().Verify(gomock.Any()).Return(nil)
		s.mockRenderer.EXPECT().Render(commands.TemplateIntakeCustomer, gomock.Any()).Return("<p/>", nil)
		s.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("550 mailbox unavailable"))
		s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		res, err := s.cmds.ProcessReservation(context.Background(), builder.NewReservationBuilder().BuildIntakeInput())

		s.Require().NoError(err)
		s.False(res.Notification.CustomerSent)
		s.False(res.Notification.BusinessSent)
		s.ErrorContains(res.Notification.Err, "send customer email")
	})

	s.Run("record store failure does not fail intake", func() {
		s.mockMailer.EXPECT().Verify(gomock.Any()).Return(errors.New("no smtp"))
		s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		res, err := s.cmds.ProcessReservation(context.Background(), builder.NewReservationBuilder().BuildIntakeInput())

		s.Require().NoError(err)
		s.False(res.Stored)
		s.NotEmpty(res.Record.SolicitudID())
	})
}

func (s *IntakeCommandsTestSuite) TestProcessReservation_IgnoresCallerCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.mockMailer.EXPECT().Verify(gomock.Any()).
		DoAndReturn(func(mailCtx context.Context) error {
			s.NoError(mailCtx.Err())
			_, hasDeadline := mailCtx.Deadline()
			s.True(hasDeadline)
			return errors.New("no smtp")
		})
	s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(storeCtx context.Context, _ *reservation.Record) error {
			s.NoError(storeCtx.Err())
			_, hasDeadline := storeCtx.Deadline()
			s.True(hasDeadline)
			return nil
		})

	result, err := s.cmds.ProcessReservation(ctx, builder.NewReservationBuilder().BuildIntakeInput())
	s.NoError(err)
	s.True(result.Stored)
}
