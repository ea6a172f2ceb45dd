package styles

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/km-arc/go-beans/framework/container"
)

// xmlProvider registers the beans described by an XML descriptor:
//
//	<beans>
//	    <bean id="dataSource" class="EmbeddedDataSource"/>
//	    <bean id="customerService" class="CustomerService">
//	        <constructor-arg ref="dataSource"/>
//	        <constructor-arg value="xml"/>
//	    </bean>
//	</beans>
type xmlProvider struct {
	container.BaseProvider
	open Opener
}

func (p *xmlProvider) Register(app *container.Container) error {
	if p.open == nil {
		return fmt.Errorf("xml style: no xml source")
	}
	r, err := p.open()
	if err != nil {
		return fmt.Errorf("open xml: %w", err)
	}
	defer r.Close()

	defs, err := ParseXML(r)
	if err != nil {
		return err
	}
	return registerDefinitions(app, defs)
}

type xmlBeans struct {
	XMLName xml.Name  `xml:"beans"`
	Beans   []xmlBean `xml:"bean"`
}

type xmlBean struct {
	ID    string   `xml:"id,attr"`
	Class string   `xml:"class,attr"`
	Args  []xmlArg `xml:"constructor-arg"`
}

type xmlArg struct {
	Ref   string `xml:"ref,attr"`
	Value string `xml:"value,attr"`
}

// ParseXML reads bean definitions in document order.
func ParseXML(r io.Reader) ([]Definition, error) {
	var doc xmlBeans
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}

	defs := make([]Definition, 0, len(doc.Beans))
	for _, b := range doc.Beans {
		def := Definition{ID: b.ID, Class: b.Class}
		for _, a := range b.Args {
			def.Args = append(def.Args, Arg{Ref: a.Ref, Value: a.Value})
		}
		defs = append(defs, def)
	}
	return defs, nil
}
