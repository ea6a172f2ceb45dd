package customer

import "github.com/km-arc/go-beans/framework/components"

// BeanName is the container key of the customer service in every style.
const BeanName = "customerService"

func init() {
	components.Register(BeanName, NewService)
}
