package payment

// CardPaymentResult is either CardPaymentSuccess or CardPaymentError.
type CardPaymentResult interface {
	isCardPaymentResult()
}

type CardPaymentSuccess struct {
	Response Response
}

type CardPaymentError struct {
	Err error
}

func (CardPaymentSuccess) isCardPaymentResult() {}
func (CardPaymentError) isCardPaymentResult()   {}

func (e CardPaymentError) Error() string {
	if e.Err == nil {
		return "card payment failed"
	}
	return e.Err.Error()
}

func (e CardPaymentError) Unwrap() error {
	return e.Err
}

// ResultOf folds a submission call's return values into a CardPaymentResult.
func ResultOf(resp Response, err error) CardPaymentResult {
	if err != nil {
		return CardPaymentError{Err: err}
	}
	return CardPaymentSuccess{Response: resp}
}
