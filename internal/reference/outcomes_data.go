package reference

import "nascli/pkg/contracts/domain"

// outcomeDescriptions maps every learning-outcome code assessed in the
// Class 8 survey to its published description. Display data only; the
// aggregation core never consults it.
var outcomeDescriptions = map[string]domain.LearningOutcome{
	"L813": {Code: "L813", Subject: domain.SubjectLanguage, Description: "Read textual/non-textual materials with comprehension and identifies the details, characters, main idea and sequence of ideas and events while reading.", Significance: "Essential for developing strong reading comprehension and analytical skills, crucial for academic success and information processing."},
	"M601": {Code: "M601", Subject: domain.SubjectMathematics, Description: "Solves problems involving large numbers by applying appropriate operations.", Significance: "Fundamental for building a strong mathematical foundation, enabling students to handle complex calculations and real-world quantitative problems."},
	"M606": {Code: "M606", Subject: domain.SubjectMathematics, Description: "Solves problems on daily life situations involving addition and subtraction of fractions / decimals.", Significance: "Practical application of mathematical concepts, fostering problem-solving skills relevant to everyday scenarios like finance and measurements."},
	"M620": {Code: "M620", Subject: domain.SubjectMathematics, Description: "Finds out the perimeter and area of rectangular objects in the surroundings like floor of the class room, surfaces of a chalk box etc.", Significance: "Develops spatial reasoning and practical geometry skills, useful in fields like architecture, engineering, and design."},
	"M621": {Code: "M621", Subject: domain.SubjectMathematics, Description: "Arranges given/collected information in the form of table, pictograph and bar graph and interprets them.", Significance: "Crucial for data literacy, enabling students to organize, visualize, and understand information, a key skill in the data-driven world."},
	"M702": {Code: "M702", Subject: domain.SubjectMathematics, Description: "Interprets the division and multiplication of fractions.", Significance: "Advances understanding of fractional arithmetic, vital for higher-level mathematics and scientific calculations."},
	"M705": {Code: "M705", Subject: domain.SubjectMathematics, Description: "Solves problems related to daily life situations involving rational numbers.", Significance: "Enhances practical mathematical skills, allowing students to apply rational number concepts to real-world financial and measurement contexts."},
	"M706": {Code: "M706", Subject: domain.SubjectMathematics, Description: "Uses exponential form of numbers to simplify problems involving multiplication and division of large numbers.", Significance: "Simplifies complex calculations, providing a powerful tool for scientific notation and understanding exponential growth/decay."},
	"M707": {Code: "M707", Subject: domain.SubjectMathematics, Description: "Adds/subtracts algebraic expressions.", Significance: "Introduces foundational algebraic skills, essential for solving equations and understanding mathematical relationships."},
	"M710": {Code: "M710", Subject: domain.SubjectMathematics, Description: "Solves problems related to conversion of percentage to fraction and decimal and vice versa.", Significance: "Develops versatility in numerical representation, critical for financial literacy, statistics, and data interpretation."},
	"M717": {Code: "M717", Subject: domain.SubjectMathematics, Description: "Finds out approximate area of closed shapes by using unit square grid/graph sheet.", Significance: "Fosters estimation and approximation skills, useful in various practical applications where precise measurements are not always feasible."},
	"M719": {Code: "M719", Subject: domain.SubjectMathematics, Description: "Finds various representative values for simple data from her/his daily life contexts like mean, median and mode.", Significance: "Introduces basic statistical concepts, enabling students to analyze and summarize data from their environment."},
	"M721": {Code: "M721", Subject: domain.SubjectMathematics, Description: "Interprets data using bar graph.", Significance: "Enhances data visualization and interpretation skills, allowing students to draw conclusions from graphical representations."},
	"M801": {Code: "M801", Subject: domain.SubjectMathematics, Description: "Generalizes properties of addition, subtraction, multiplication and division of rational numbers through patterns.", Significance: "Deepens understanding of number properties, crucial for advanced mathematical reasoning and abstract thinking."},
	"M802": {Code: "M802", Subject: domain.SubjectMathematics, Description: "Finds rational numbers between two given rational numbers.", Significance: "Reinforces understanding of number density and rational number properties, important for number theory and advanced mathematics."},
	"M803": {Code: "M803", Subject: domain.SubjectMathematics, Description: "Proves divisibility rules of 2, 3,4, 5, 6, 9 and 11.", Significance: "Develops number sense and logical reasoning, useful for mental math and understanding number theory."},
	"M804": {Code: "M804", Subject: domain.SubjectMathematics, Description: "Finds squares, cubes, square roots and cube roots of numbers using different methods.", Significance: "Builds foundational skills in exponents and roots, essential for algebra, geometry, and various scientific calculations."},
	"M808": {Code: "M808", Subject: domain.SubjectMathematics, Description: "Uses various algebraic identities in solving problems of daily life.", Significance: "Applies algebraic concepts to practical situations, enhancing problem-solving abilities in diverse contexts."},
	"M812": {Code: "M812", Subject: domain.SubjectMathematics, Description: "Verifies properties of parallelogram and establishes the relationship between them through reasoning.", Significance: "Develops geometric reasoning and proof skills, fundamental for advanced geometry and spatial analysis."},
	"M818": {Code: "M818", Subject: domain.SubjectMathematics, Description: "Finds surface area and volume of cuboidal and cylindrical object.", Significance: "Essential for understanding 3D shapes and their properties, with applications in engineering, design, and packaging."},
	"M819": {Code: "M819", Subject: domain.SubjectMathematics, Description: "Draws and interprets bar charts and pie charts.", Significance: "Strengthens data visualization and interpretation skills, enabling effective communication of data insights."},
	"Sci703": {Code: "Sci703", Subject: domain.SubjectScience, Description: "Classifies materials and organisms based on properties/characteristics.", Significance: "Develops observational and categorization skills, foundational for scientific inquiry and understanding biological and chemical diversity."},
	"Sci704": {Code: "Sci704", Subject: domain.SubjectScience, Description: "Conducts simple investigation to seek answers to queries.", Significance: "Fosters scientific inquiry and experimental design skills, crucial for hands-on learning and problem-solving in science."},
	"Sci705": {Code: "Sci705", Subject: domain.SubjectScience, Description: "Relates processes and phenomenon with causes.", Significance: "Promotes critical thinking and cause-and-effect reasoning, essential for understanding scientific principles and natural phenomena."},
	"Sci708": {Code: "Sci708", Subject: domain.SubjectScience, Description: "Measures and calculates eg, temperature; pulse rate; speed of moving objects; time period of a simple pendulum, etc.", Significance: "Develops practical measurement and calculation skills, vital for experimental science and data collection."},
	"Sci710": {Code: "Sci710", Subject: domain.SubjectScience, Description: "Plots and interprets graphs.", Significance: "Enhances data analysis and visualization skills, allowing students to understand trends and relationships in scientific data."},
	"Sci711": {Code: "Sci711", Subject: domain.SubjectScience, Description: "Constructs models using materials from surroundings and explains their working.", Significance: "Encourages creativity and practical application of scientific knowledge, fostering hands-on learning and understanding of scientific principles."},
	"Sci801": {Code: "Sci801", Subject: domain.SubjectScience, Description: "Differentiates materials, organism and processes.", Significance: "Refines classification and analytical skills, crucial for understanding the diversity and complexity of the natural world."},
	"Sci804": {Code: "Sci804", Subject: domain.SubjectScience, Description: "Relates processes and phenomenon with causes.", Significance: "Deepens understanding of scientific causality, enabling students to explain and predict natural events."},
	"Sci805": {Code: "Sci805", Subject: domain.SubjectScience, Description: "Explains processes and phenomenon.", Significance: "Develops clear and concise scientific communication skills, essential for conveying complex ideas."},
	"Sci807": {Code: "Sci807", Subject: domain.SubjectScience, Description: "Measures angles of incidence and reflection, etc.", Significance: "Applies geometric principles to optics, fundamental for understanding light and its behavior."},
	"Sci811": {Code: "Sci811", Subject: domain.SubjectScience, Description: "Applies learning of scientific concepts in day-to-day life.", Significance: "Connects classroom learning to real-world applications, making science relevant and practical."},
	"Sci813": {Code: "Sci813", Subject: domain.SubjectScience, Description: "Makes efforts to protect environment.", Significance: "Fosters environmental awareness and responsibility, promoting sustainable practices and civic engagement."},
	"Sst605": {Code: "Sst605", Subject: domain.SubjectSocialScience, Description: "Identifies latitudes and longitudes, eg, poles, equator, tropics, States/UTs of India and other neighboring countries on globe and the world map.", Significance: "Develops geographical literacy and spatial awareness, essential for understanding global locations and navigation."},
	"Sst610": {Code: "Sst610", Subject: domain.SubjectSocialScience, Description: "Locates important historical sites, places on an outline map of India.", Significance: "Enhances historical and geographical knowledge, connecting historical events to their physical locations."},
	"Sst625": {Code: "Sst625", Subject: domain.SubjectSocialScience, Description: "Describes the functioning of rural and urban local government bodies in sectors like health and education.", Significance: "Promotes civic knowledge and understanding of local governance, empowering students to engage with their communities."},
	"Sst703": {Code: "Sst703", Subject: domain.SubjectSocialScience, Description: "Explains preventive actions to be undertaken in the event of disasters.", Significance: "Develops awareness of disaster preparedness and safety measures, crucial for personal and community well-being."},
	"Sst704": {Code: "Sst704", Subject: domain.SubjectSocialScience, Description: "Describes formation of landforms due to various factors.", Significance: "Enhances understanding of geological processes and physical geography, explaining the Earth's diverse landscapes."},
	"Sst722": {Code: "Sst722", Subject: domain.SubjectSocialScience, Description: "Explains the significance of equality in democracy.", Significance: "Fosters civic values and understanding of democratic principles, promoting social justice and human rights."},
	"Sst726": {Code: "Sst726", Subject: domain.SubjectSocialScience, Description: "Describes the process of election to the legislative assembly.", Significance: "Educates students on democratic processes and electoral systems, encouraging informed participation in governance."},
	"Sst731": {Code: "Sst731", Subject: domain.SubjectSocialScience, Description: "Explains the functioning of media with appropriate examples from newspapers.", Significance: "Develops media literacy and critical thinking about information sources, essential for navigating the modern information landscape."},
	"Sst733": {Code: "Sst733", Subject: domain.SubjectSocialScience, Description: "Differentiates between different kinds of markets.", Significance: "Introduces economic concepts and market structures, providing foundational knowledge for understanding commerce and trade."},
	"Sst734": {Code: "Sst734", Subject: domain.SubjectSocialScience, Description: "Traces how goods travel through various market places.", Significance: "Explains supply chains and economic flows, illustrating the journey of products from production to consumption."},
	"Sst802": {Code: "Sst802", Subject: domain.SubjectSocialScience, Description: "Describes major crops, types of farming and agricultural practices in her/his own area/state.", Significance: "Connects students to local agriculture and food systems, fostering understanding of economic geography and sustainability."},
	"Sst805": {Code: "Sst805", Subject: domain.SubjectSocialScience, Description: "Locates distribution of important minerals eg coal and mineral oil on the world map.", Significance: "Enhances geographical knowledge of natural resources and their global distribution, relevant to economics and environmental studies."},
	"Sst807": {Code: "Sst807", Subject: domain.SubjectSocialScience, Description: "Justifies judicious use of natural resources.", Significance: "Promotes environmental stewardship and sustainable resource management, encouraging responsible consumption and conservation."},
	"Sst809": {Code: "Sst809", Subject: domain.SubjectSocialScience, Description: "Draws interrelationship between types of farming and development in different regions of the world.", Significance: "Develops understanding of global economic patterns and the impact of agriculture on regional development."},
	"Sst810": {Code: "Sst810", Subject: domain.SubjectSocialScience, Description: "Distinguishes the modern period from the medieval and the ancient periods through the use of sources.", Significance: "Fosters historical periodization and source analysis skills, crucial for understanding historical change and continuity."},
	"Sst815": {Code: "Sst815", Subject: domain.SubjectSocialScience, Description: "Explains the origin, nature and spread of the revolt of 1857 and the lessons learned from it.", Significance: "Provides historical context on a pivotal event in Indian history, fostering understanding of colonial rule and resistance movements."},
	"Sst816": {Code: "Sst816", Subject: domain.SubjectSocialScience, Description: "Analyses the decline of pre-existing urban centers and handicraft industries and the development of new urban centers and industries in India during the colonial period.", Significance: "Explores the economic and social impact of colonialism, highlighting historical transformations in urban and industrial landscapes."},
	"Sst818": {Code: "Sst818", Subject: domain.SubjectSocialScience, Description: "Analyses the issues related to caste, women, widow remarriage, child marriage, social reforms and the laws and policies of colonial administration towards these issues.", Significance: "Examines social justice issues and historical reform movements, promoting critical awareness of social inequalities and legal frameworks."},
	"Sst823": {Code: "Sst823", Subject: domain.SubjectSocialScience, Description: "Applies the knowledge of the Fundamental Rights to find out about their violation, protection and promotion in a given situation.", Significance: "Empowers students with knowledge of their rights and legal protections, fostering civic engagement and advocacy."},
	"Sst827": {Code: "Sst827", Subject: domain.SubjectSocialScience, Description: "Describes the process of making a law (eg Domestic Violence Act, RTI Act, RTE Act).", Significance: "Educates students on legislative processes and the creation of laws, promoting understanding of legal frameworks and their societal impact."},
	"Sst831": {Code: "Sst831", Subject: domain.SubjectSocialScience, Description: "Identifies the role of Government in providing public facilities such as water, sanitation, road, electricity etc, and recognizes their availability.", Significance: "Promotes understanding of public services and government responsibilities, fostering civic awareness and engagement with local infrastructure."},
	"Sst833": {Code: "Sst833", Subject: domain.SubjectSocialScience, Description: "Draws bar diagram to show population of different countries/India/states.", Significance: "Develops data visualization skills in a geographical context, enabling students to represent and interpret demographic data."},
}
