package request

type CreateBookingRequest struct {
	RoomID       string  `json:"room_id" validate:"required,uuid4"`
	GuestName    string  `json:"guest_name" validate:"required,min=2,max=100"`
	GuestPhone   *string `json:"guest_phone,omitempty" validate:"omitempty,min=7,max=20"`
	GuestEmail   *string `json:"guest_email,omitempty" validate:"omitempty,email"`
	CheckInDate  string  `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string  `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}
